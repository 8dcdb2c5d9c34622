package store

import (
	"fmt"

	"gotodir/internal/model"
)

// ShortcutTable holds shortcuts keyed by alias. Record order only matters
// for keeping saves stable; lookups never depend on it.
type ShortcutTable struct {
	items []model.Shortcut
	index map[string]int
}

// NewShortcutTable returns an empty table.
func NewShortcutTable() *ShortcutTable {
	return &ShortcutTable{index: make(map[string]int)}
}

// Len returns the number of shortcuts.
func (t *ShortcutTable) Len() int { return len(t.items) }

// Get looks up alias.
func (t *ShortcutTable) Get(alias string) (model.Shortcut, bool) {
	i, ok := t.index[alias]
	if !ok {
		return model.Shortcut{}, false
	}
	return t.items[i], true
}

// Set inserts s, replacing any shortcut with the same alias in place.
// It reports whether an existing shortcut was replaced.
func (t *ShortcutTable) Set(s model.Shortcut) bool {
	if i, ok := t.index[s.Alias]; ok {
		t.items[i] = s
		return true
	}
	t.index[s.Alias] = len(t.items)
	t.items = append(t.items, s)
	return false
}

// Remove deletes alias. Removing an unknown alias returns model.ErrNotFound
// and leaves the table untouched.
func (t *ShortcutTable) Remove(alias string) (model.Shortcut, error) {
	i, ok := t.index[alias]
	if !ok {
		return model.Shortcut{}, fmt.Errorf("%w: %s", model.ErrNotFound, alias)
	}
	removed := t.items[i]
	t.items = append(t.items[:i], t.items[i+1:]...)
	t.reindex()
	return removed, nil
}

// RemovePath deletes every shortcut pointing at path and returns them.
func (t *ShortcutTable) RemovePath(path string) []model.Shortcut {
	var removed []model.Shortcut
	kept := t.items[:0]
	for _, s := range t.items {
		if s.Path == path {
			removed = append(removed, s)
			continue
		}
		kept = append(kept, s)
	}
	t.items = kept
	t.reindex()
	return removed
}

// Rename moves the shortcut stored under from to to. An existing shortcut
// named to is overwritten.
func (t *ShortcutTable) Rename(from, to string) error {
	s, ok := t.Get(from)
	if !ok {
		return fmt.Errorf("%w: %s", model.ErrNotFound, from)
	}
	if from == to {
		return nil
	}
	// Last write wins: an existing target is dropped.
	_, _ = t.Remove(to)
	i := t.index[from]
	s.Alias = to
	t.items[i] = s
	t.reindex()
	return nil
}

// All returns a copy of the shortcuts in record order.
func (t *ShortcutTable) All() []model.Shortcut {
	out := make([]model.Shortcut, len(t.items))
	copy(out, t.items)
	return out
}

// Clear removes every shortcut.
func (t *ShortcutTable) Clear() {
	t.items = nil
	t.index = make(map[string]int)
}

func (t *ShortcutTable) reindex() {
	t.index = make(map[string]int, len(t.items))
	for i, s := range t.items {
		t.index[s.Alias] = i
	}
}
