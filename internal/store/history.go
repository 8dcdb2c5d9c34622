package store

import (
	"fmt"

	"gotodir/internal/model"
)

// HistoryStack is a LIFO of visited locations. Entries are stored oldest
// first; index 0 in the public API always means the top.
type HistoryStack struct {
	entries []model.HistoryEntry
}

// NewHistoryStack returns an empty stack.
func NewHistoryStack() *HistoryStack { return &HistoryStack{} }

// Len returns the number of entries.
func (h *HistoryStack) Len() int { return len(h.entries) }

// Push adds e on top. The stack is unbounded; see Prune.
func (h *HistoryStack) Push(e model.HistoryEntry) {
	h.entries = append(h.entries, e)
}

// Pop removes and returns the top entry.
func (h *HistoryStack) Pop() (model.HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return model.HistoryEntry{}, false
	}
	top := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return top, true
}

// Top returns the top entry without removing it.
func (h *HistoryStack) Top() (model.HistoryEntry, bool) {
	return h.At(0)
}

// At returns the entry i positions below the top.
func (h *HistoryStack) At(i int) (model.HistoryEntry, bool) {
	pos := h.pos(i)
	if pos < 0 {
		return model.HistoryEntry{}, false
	}
	return h.entries[pos], true
}

// RemoveAt removes the entry i positions below the top.
func (h *HistoryStack) RemoveAt(i int) (model.HistoryEntry, error) {
	pos := h.pos(i)
	if pos < 0 {
		return model.HistoryEntry{}, fmt.Errorf("%w: history index %d", model.ErrNotFound, i)
	}
	e := h.entries[pos]
	h.entries = append(h.entries[:pos], h.entries[pos+1:]...)
	return e, nil
}

// IndexOf returns the index (0 = top) of the most recent entry for path,
// or -1.
func (h *HistoryStack) IndexOf(path string) int {
	return h.Find(func(e model.HistoryEntry) bool { return e.Path == path })
}

// Find returns the index (0 = top) of the most recent entry matching fn,
// or -1.
func (h *HistoryStack) Find(fn func(model.HistoryEntry) bool) int {
	for i := 0; i < len(h.entries); i++ {
		if fn(h.entries[len(h.entries)-1-i]) {
			return i
		}
	}
	return -1
}

// Adjust adds delta to the priority of entry i, clamped to [0, ceiling].
// A priority of 0 does not remove the entry; that is Prune's job.
func (h *HistoryStack) Adjust(i, delta, ceiling int) (model.HistoryEntry, error) {
	pos := h.pos(i)
	if pos < 0 {
		return model.HistoryEntry{}, fmt.Errorf("%w: history index %d", model.ErrNotFound, i)
	}
	h.entries[pos].Priority = clamp(h.entries[pos].Priority+delta, ceiling)
	return h.entries[pos], nil
}

// Decay subtracts delta from every priority, stopping at 0.
// It returns how many entries reached 0 because of this call.
func (h *HistoryStack) Decay(delta int) int {
	expired := 0
	for i := range h.entries {
		before := h.entries[i].Priority
		h.entries[i].Priority = max(before-delta, 0)
		if before > 0 && h.entries[i].Priority == 0 {
			expired++
		}
	}
	return expired
}

// Reset sets every priority back to ceiling.
func (h *HistoryStack) Reset(ceiling int) {
	for i := range h.entries {
		h.entries[i].Priority = ceiling
	}
}

// Prune drops entries whose priority is 0 or less, then keeps only the
// newest limit entries (limit <= 0 means no cap). It returns how many were
// removed.
func (h *HistoryStack) Prune(limit int) int {
	before := len(h.entries)
	kept := h.entries[:0]
	for _, e := range h.entries {
		if e.Priority > 0 {
			kept = append(kept, e)
		}
	}
	h.entries = kept
	if limit > 0 && len(h.entries) > limit {
		h.entries = append([]model.HistoryEntry(nil), h.entries[len(h.entries)-limit:]...)
	}
	return before - len(h.entries)
}

// Entries returns a copy of the stack, top first.
func (h *HistoryStack) Entries() []model.HistoryEntry {
	out := make([]model.HistoryEntry, len(h.entries))
	for i, e := range h.entries {
		out[len(h.entries)-1-i] = e
	}
	return out
}

// Clear removes every entry.
func (h *HistoryStack) Clear() { h.entries = nil }

func (h *HistoryStack) pos(i int) int {
	if i < 0 || i >= len(h.entries) {
		return -1
	}
	return len(h.entries) - 1 - i
}

func clamp(v, ceiling int) int {
	if v < 0 {
		return 0
	}
	if v > ceiling {
		return ceiling
	}
	return v
}
