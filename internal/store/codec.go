package store

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gotodir/internal/model"
)

// Sep separates the fields of a record.
const Sep = ";"

const (
	shortcutFields = 4 // alias;path;opener;flag
	historyFields  = 4 // path;priority;pid;unixtime
)

// BadRecord describes a line that could not be decoded.
type BadRecord struct {
	Line int    // 1-based line number
	Raw  string // Line content
	Err  error  // Wraps model.ErrMalformedRecord
}

// scanLines calls fn for every non-blank line of r.
func scanLines(r io.Reader, fn func(n int, line string)) error {
	scanner := bufio.NewScanner(r)
	// Paths can be long; allow up to 1MB per line.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fn(n, line)
	}
	return scanner.Err()
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", model.ErrMalformedRecord, fmt.Sprintf(format, args...))
}

// ParseShortcut decodes one shortcut record.
func ParseShortcut(line string) (model.Shortcut, error) {
	fields := strings.Split(line, Sep)
	if len(fields) != shortcutFields {
		return model.Shortcut{}, malformed("want %d fields, got %d", shortcutFields, len(fields))
	}
	if err := model.ValidateAlias(fields[0]); err != nil {
		return model.Shortcut{}, malformed("alias %q", fields[0])
	}
	if fields[1] == "" {
		return model.Shortcut{}, malformed("empty path for %q", fields[0])
	}
	flag, err := parseInt(fields[3])
	if err != nil {
		return model.Shortcut{}, malformed("flag %q is not an integer", fields[3])
	}
	return model.Shortcut{
		Alias:  fields[0],
		Path:   fields[1],
		Opener: fields[2],
		Flag:   model.Flag(flag),
	}, nil
}

// parseInt accepts only the form FormatInt produces, so a loaded record
// saves back to the same bytes. " 0", "+1" and "01" are rejected.
func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if strconv.FormatInt(v, 10) != s {
		return 0, fmt.Errorf("%q is not in canonical form", s)
	}
	return v, nil
}

// FormatShortcut encodes one shortcut record.
func FormatShortcut(s model.Shortcut) string {
	return strings.Join([]string{s.Alias, s.Path, s.Opener, strconv.Itoa(int(s.Flag))}, Sep)
}

// ParseHistory decodes one history record.
func ParseHistory(line string) (model.HistoryEntry, error) {
	fields := strings.Split(line, Sep)
	if len(fields) != historyFields {
		return model.HistoryEntry{}, malformed("want %d fields, got %d", historyFields, len(fields))
	}
	if fields[0] == "" {
		return model.HistoryEntry{}, malformed("empty path")
	}
	nums := make([]int64, 3)
	for i, f := range fields[1:] {
		v, err := parseInt(f)
		if err != nil {
			return model.HistoryEntry{}, malformed("field %d %q is not an integer", i+2, f)
		}
		nums[i] = v
	}
	return model.HistoryEntry{
		Path:     fields[0],
		Priority: int(nums[0]),
		PID:      int(nums[1]),
		Time:     time.Unix(nums[2], 0),
	}, nil
}

// FormatHistory encodes one history record.
func FormatHistory(e model.HistoryEntry) string {
	var ts int64
	if !e.Time.IsZero() {
		ts = e.Time.Unix()
	}
	return strings.Join([]string{
		e.Path,
		strconv.Itoa(e.Priority),
		strconv.Itoa(e.PID),
		strconv.FormatInt(ts, 10),
	}, Sep)
}

// DecodeShortcuts reads a shortcut table. Malformed lines are skipped and
// returned in bad; only read errors abort.
func DecodeShortcuts(r io.Reader) (table *ShortcutTable, bad []BadRecord, err error) {
	table = NewShortcutTable()
	err = scanLines(r, func(n int, line string) {
		s, perr := ParseShortcut(line)
		if perr != nil {
			bad = append(bad, BadRecord{Line: n, Raw: line, Err: perr})
			return
		}
		table.Set(s)
	})
	return table, bad, err
}

// EncodeShortcuts writes every record of t, one per line.
func EncodeShortcuts(w io.Writer, t *ShortcutTable) error {
	bw := bufio.NewWriter(w)
	for _, s := range t.All() {
		if _, err := bw.WriteString(FormatShortcut(s) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DecodeHistory reads a history stack, oldest entry first.
func DecodeHistory(r io.Reader) (stack *HistoryStack, bad []BadRecord, err error) {
	stack = NewHistoryStack()
	err = scanLines(r, func(n int, line string) {
		e, perr := ParseHistory(line)
		if perr != nil {
			bad = append(bad, BadRecord{Line: n, Raw: line, Err: perr})
			return
		}
		stack.Push(e)
	})
	return stack, bad, err
}

// EncodeHistory writes the stack oldest first, so the last line is the top.
func EncodeHistory(w io.Writer, h *HistoryStack) error {
	bw := bufio.NewWriter(w)
	for _, e := range h.entries {
		if _, err := bw.WriteString(FormatHistory(e) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
