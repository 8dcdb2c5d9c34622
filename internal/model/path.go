package model

import "time"

// Flag distinguishes permanent shortcuts from ones written automatically.
// Any nonzero value counts as auto-saved; the raw value is kept so a
// load/save cycle does not rewrite the file.
type Flag int

const (
	FlagStatic Flag = 0 // Created by the user
	FlagAuto   Flag = 1 // Auto-saved, may be replaced without asking
)

// Auto reports whether the shortcut was auto-saved.
func (f Flag) Auto() bool { return f != FlagStatic }

// Shortcut is a named location.
type Shortcut struct {
	Alias  string // Unique, case-sensitive key (e.g. "edit")
	Path   string // Absolute directory path, not required to exist
	Opener string // Tool used by "open" (e.g. "code"); empty means the configured default
	Flag   Flag   // Static or auto-saved
}

// HistoryEntry is a location pushed onto the history stack.
type HistoryEntry struct {
	Path     string    // Absolute directory path
	Priority int       // Decay counter; 0 means eligible for pruning
	PID      int       // Process that pushed the entry
	Time     time.Time // When the entry was pushed
}

// Request is a single navigation request.
type Request struct {
	Primary string // Alias, keyword or literal path; empty means "go home"
	Subpath string // Optional child path appended to the resolved location
	Opener  string // Caller-requested opener, overrides the stored one
}

// Source tells which resolution tier produced a Resolution.
type Source string

const (
	SourceAlias   Source = "alias"
	SourceHome    Source = "home"
	SourceHistory Source = "history"
	SourceLiteral Source = "literal"
)

// Resolution is the outcome of resolving a Request.
type Resolution struct {
	Path         string    // Concrete absolute path
	Opener       string    // Opener to use at Path
	Source       Source    // Tier that matched
	Shortcut     *Shortcut // Matching shortcut when Source is SourceAlias
	HistoryIndex int       // Index (0 = top) of the matching entry when Source is SourceHistory, else -1
}
