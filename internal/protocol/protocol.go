// Package protocol encodes the single result line read by the shell wrapper:
//
//	<clearScreen:0|1>#<mode:0|1>#<payload>[#<extraLine>...]
//
// Mode 0 asks the wrapper to change directory to the payload; an extra field
// there names an opener to run in the new directory. Mode 1 asks it to print
// the payload and every extra field as separate lines.
package protocol

import (
	"fmt"
	"io"
	"strings"
)

// Sep separates the fields of a result line.
const Sep = "#"

// Mode tells the wrapper what to do with the payload.
type Mode int

const (
	ModeNavigate Mode = 0 // Payload is a directory to cd into
	ModeValue    Mode = 1 // Payload (and extras) are printed verbatim
)

// Result is the outcome of one invocation.
type Result struct {
	Clear   bool     // Ask the wrapper to clear the terminal first
	Mode    Mode     // Navigate or print
	Payload string   // Path or message
	Extra   []string // Further lines to print
	Status  int      // Process exit status
}

// Navigate returns a successful cd result.
func Navigate(path string) Result {
	return Result{Mode: ModeNavigate, Payload: path}
}

// Value returns a successful print result. The first line is the payload.
func Value(payload string, extra ...string) Result {
	return Result{Mode: ModeValue, Payload: payload, Extra: extra}
}

// Lines returns a print result for a multi-line listing. An empty listing
// prints empty.
func Lines(lines []string, empty string) Result {
	if len(lines) == 0 {
		return Value(empty)
	}
	return Value(lines[0], lines[1:]...)
}

// WithClear sets the clear-screen flag.
func (r Result) WithClear(clear bool) Result {
	r.Clear = clear
	return r
}

// Encode renders the result line without a trailing newline. Free text is
// made single-line and '#' is replaced so the field count is preserved.
func (r Result) Encode() string {
	fields := make([]string, 0, 3+len(r.Extra))
	fields = append(fields, boolField(r.Clear), fmt.Sprint(int(r.Mode)), sanitize(r.Payload))
	for _, e := range r.Extra {
		fields = append(fields, sanitize(e))
	}
	return strings.Join(fields, Sep)
}

// WriteTo writes the encoded line followed by a newline.
func (r Result) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.Encode()+"\n")
	return int64(n), err
}

// Decode parses a result line. The exit status is not part of the line and
// is left at zero.
func Decode(line string) (Result, error) {
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Split(line, Sep)
	if len(fields) < 3 {
		return Result{}, fmt.Errorf("result line has %d fields, want at least 3", len(fields))
	}
	var r Result
	switch fields[0] {
	case "0":
	case "1":
		r.Clear = true
	default:
		return Result{}, fmt.Errorf("bad clear field %q", fields[0])
	}
	switch fields[1] {
	case "0":
		r.Mode = ModeNavigate
	case "1":
		r.Mode = ModeValue
	default:
		return Result{}, fmt.Errorf("bad mode field %q", fields[1])
	}
	r.Payload = fields[2]
	if len(fields) > 3 {
		r.Extra = fields[3:]
	}
	return r, nil
}

// Safe reports whether s can be emitted unchanged as a navigation payload.
func Safe(s string) bool {
	return !strings.ContainsAny(s, Sep+"\r\n")
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

var sanitizer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", Sep, "?")

func sanitize(s string) string {
	return sanitizer.Replace(s)
}
