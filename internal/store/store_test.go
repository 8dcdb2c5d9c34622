package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotodir/internal/model"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	return New(filepath.Join(dir, "shortcuts"), filepath.Join(dir, "history"), nil), dir
}

func TestLoadMissingFilesIsEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	table, stack, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, 0, stack.Len())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, dir := newTestStore(t)

	table := NewShortcutTable()
	table.Set(model.Shortcut{Alias: "edit", Path: "/home/u/project", Opener: "code"})
	table.Set(model.Shortcut{Alias: "auto", Path: "/tmp/x", Opener: "shell", Flag: model.FlagAuto})
	stack := NewHistoryStack()
	stack.Push(model.HistoryEntry{Path: "/srv", Priority: 1000, PID: 7, Time: time.Unix(1700000000, 0)})

	require.NoError(t, s.SaveShortcuts(table))
	require.NoError(t, s.SaveHistory(stack))

	gotTable, gotStack, err := s.Load()
	require.NoError(t, err)
	if diff := cmp.Diff(table.All(), gotTable.All()); diff != "" {
		t.Errorf("shortcuts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(stack.Entries(), gotStack.Entries()); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "shortcuts"))
	require.NoError(t, err)
	assert.Equal(t, "edit;/home/u/project;code;0\nauto;/tmp/x;shell;1\n", string(raw))

	// Saving what was loaded leaves the bytes unchanged.
	require.NoError(t, s.SaveShortcuts(gotTable))
	again, err := os.ReadFile(filepath.Join(dir, "shortcuts"))
	require.NoError(t, err)
	assert.Equal(t, string(raw), string(again))
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	s, dir := newTestStore(t)
	table := NewShortcutTable()
	table.Set(model.Shortcut{Alias: "a", Path: "/a"})
	require.NoError(t, s.SaveShortcuts(table))
	require.NoError(t, s.SaveShortcuts(table))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"shortcuts"}, names)
}

func TestSaveReplacesExistingFile(t *testing.T) {
	s, dir := newTestStore(t)
	path := filepath.Join(dir, "shortcuts")
	require.NoError(t, os.WriteFile(path, []byte("old;/old;shell;0\n"), 0o644))

	table := NewShortcutTable()
	table.Set(model.Shortcut{Alias: "new", Path: "/new", Opener: "code"})
	require.NoError(t, s.SaveShortcuts(table))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new;/new;code;0\n", string(raw))
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	s := New(filepath.Join(dir, "shortcuts"), filepath.Join(dir, "history"), nil)
	require.NoError(t, s.SaveHistory(NewHistoryStack()))
	_, err := os.Stat(filepath.Join(dir, "history"))
	assert.NoError(t, err)
}

func TestSaveUnwritableIsIOFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// The parent "directory" is a regular file, so nothing can be created under it.
	s := New(filepath.Join(blocker, "shortcuts"), filepath.Join(blocker, "history"), nil)
	err := s.SaveShortcuts(NewShortcutTable())
	assert.ErrorIs(t, err, model.ErrIO)
}

func TestLoadUnreadableIsIOFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory where the shortcut file should be.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "shortcuts"), 0o755))
	s := New(filepath.Join(dir, "shortcuts"), filepath.Join(dir, "history"), nil)

	_, err := s.LoadShortcuts()
	assert.ErrorIs(t, err, model.ErrIO)
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	s, dir := newTestStore(t)
	content := "a;/a;shell;0\nthis is not a record\nb;/b;shell;0\nc;/c;shell;0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shortcuts"), []byte(content), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "history"), []byte("/x;10;1;1\n/y;oops\n"), 0o644))

	table, stack, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, 1, stack.Len())
}
