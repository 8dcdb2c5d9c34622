package model

// Markers used by list output.
// Plain single-width characters so columns stay aligned in any terminal.
const (
	MarkStatic  = " " // Static shortcut (no marker to reduce noise)
	MarkAuto    = "~" // Auto-saved shortcut
	MarkMissing = "✗" // Directory does not exist
	MarkExpired = "†" // History entry with priority 0
	MarkTop     = ">" // Top of the history stack
)
