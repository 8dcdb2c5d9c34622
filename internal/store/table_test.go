package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotodir/internal/model"
)

func TestShortcutTableSetOverwrites(t *testing.T) {
	table := NewShortcutTable()
	assert.False(t, table.Set(model.Shortcut{Alias: "a", Path: "/p1"}))
	assert.True(t, table.Set(model.Shortcut{Alias: "a", Path: "/p2"}))

	require.Equal(t, 1, table.Len())
	s, ok := table.Get("a")
	require.True(t, ok)
	assert.Equal(t, "/p2", s.Path)
}

func TestShortcutTableAliasesAreCaseSensitive(t *testing.T) {
	table := NewShortcutTable()
	table.Set(model.Shortcut{Alias: "src", Path: "/lower"})
	table.Set(model.Shortcut{Alias: "SRC", Path: "/upper"})

	assert.Equal(t, 2, table.Len())
	s, _ := table.Get("SRC")
	assert.Equal(t, "/upper", s.Path)
}

func TestShortcutTableRemove(t *testing.T) {
	table := NewShortcutTable()
	table.Set(model.Shortcut{Alias: "a", Path: "/a"})
	table.Set(model.Shortcut{Alias: "b", Path: "/b"})
	table.Set(model.Shortcut{Alias: "c", Path: "/c"})

	removed, err := table.Remove("b")
	require.NoError(t, err)
	assert.Equal(t, "/b", removed.Path)

	_, ok := table.Get("b")
	assert.False(t, ok)
	c, ok := table.Get("c")
	require.True(t, ok, "index must survive removal of an earlier record")
	assert.Equal(t, "/c", c.Path)

	_, err = table.Remove("b")
	assert.True(t, errors.Is(err, model.ErrNotFound))
	assert.Equal(t, 2, table.Len())
}

func TestShortcutTableRemovePath(t *testing.T) {
	table := NewShortcutTable()
	table.Set(model.Shortcut{Alias: "a", Path: "/shared"})
	table.Set(model.Shortcut{Alias: "b", Path: "/other"})
	table.Set(model.Shortcut{Alias: "c", Path: "/shared"})

	removed := table.RemovePath("/shared")
	assert.Len(t, removed, 2)
	assert.Equal(t, 1, table.Len())
	_, ok := table.Get("b")
	assert.True(t, ok)

	assert.Empty(t, table.RemovePath("/nowhere"))
}

func TestShortcutTableRename(t *testing.T) {
	table := NewShortcutTable()
	table.Set(model.Shortcut{Alias: "old", Path: "/a", Opener: "code"})
	table.Set(model.Shortcut{Alias: "taken", Path: "/b"})

	require.NoError(t, table.Rename("old", "taken"))
	assert.Equal(t, 1, table.Len())
	s, ok := table.Get("taken")
	require.True(t, ok)
	assert.Equal(t, "/a", s.Path)
	assert.Equal(t, "code", s.Opener)

	_, ok = table.Get("old")
	assert.False(t, ok)

	assert.ErrorIs(t, table.Rename("missing", "x"), model.ErrNotFound)
	require.NoError(t, table.Rename("taken", "taken"))
}

func TestShortcutTableClear(t *testing.T) {
	table := NewShortcutTable()
	table.Set(model.Shortcut{Alias: "a", Path: "/a"})
	table.Clear()
	assert.Equal(t, 0, table.Len())
	_, ok := table.Get("a")
	assert.False(t, ok)
}
