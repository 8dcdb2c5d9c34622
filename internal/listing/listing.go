// Package listing renders the shortcut table and the history stack as
// aligned text columns. Each returned string is one output line; the caller
// decides how lines reach the terminal.
package listing

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gotodir/internal/model"
)

// Exists reports whether a directory is present. Rendering never touches
// the filesystem itself.
type Exists func(path string) bool

// Shortcuts renders one line per shortcut: marker, alias, path, opener.
// A missing directory is marked instead of the static/auto marker.
func Shortcuts(items []model.Shortcut, exists Exists) []string {
	rows := make([][]string, 0, len(items))
	for _, s := range items {
		mark := model.MarkStatic
		if s.Flag.Auto() {
			mark = model.MarkAuto
		}
		if exists != nil && !exists(s.Path) {
			mark = model.MarkMissing
		}
		rows = append(rows, []string{mark, s.Alias, s.Path, s.Opener})
	}
	return columns(rows)
}

// History renders one line per entry, top of the stack first: index,
// marker, path, priority.
func History(entries []model.HistoryEntry, exists Exists) []string {
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		mark := " "
		switch {
		case exists != nil && !exists(e.Path):
			mark = model.MarkMissing
		case e.Priority <= 0:
			mark = model.MarkExpired
		case i == 0:
			mark = model.MarkTop
		}
		rows = append(rows, []string{fmt.Sprint(i), mark, e.Path, fmt.Sprint(e.Priority)})
	}
	return columns(rows)
}

// columns pads every cell but the last to its column's display width and
// joins cells with a single space.
func columns(rows [][]string) []string {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var b strings.Builder
		for i, cell := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(cell)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)))
			}
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return lines
}
