// Package store persists the shortcut table and the history stack as flat
// ';'-delimited record files.
//
// Loads are forgiving: a missing file is an empty store and malformed lines
// are skipped with a warning. Saves replace the whole file through a temp
// file and a rename, so a concurrent reader never sees a partial write.
package store

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"gotodir/internal/model"
)

const (
	permFile = 0o644
	permDir  = 0o755
)

// Store reads and writes the two record files.
type Store struct {
	shortcutsPath string
	historyPath   string
	log           *zap.Logger
}

// New returns a Store backed by the given files. A nil logger discards output.
func New(shortcutsPath, historyPath string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		shortcutsPath: shortcutsPath,
		historyPath:   historyPath,
		log:           log,
	}
}

// Load reads both stores.
func (s *Store) Load() (*ShortcutTable, *HistoryStack, error) {
	table, err := s.LoadShortcuts()
	if err != nil {
		return nil, nil, err
	}
	stack, err := s.LoadHistory()
	if err != nil {
		return nil, nil, err
	}
	return table, stack, nil
}

// LoadShortcuts reads the shortcut table.
func (s *Store) LoadShortcuts() (*ShortcutTable, error) {
	var table *ShortcutTable
	err := s.read(s.shortcutsPath, func(r io.Reader) error {
		t, bad, err := DecodeShortcuts(r)
		s.reportBad(s.shortcutsPath, bad)
		table = t
		return err
	})
	if table == nil {
		table = NewShortcutTable()
	}
	return table, err
}

// LoadHistory reads the history stack.
func (s *Store) LoadHistory() (*HistoryStack, error) {
	var stack *HistoryStack
	err := s.read(s.historyPath, func(r io.Reader) error {
		h, bad, err := DecodeHistory(r)
		s.reportBad(s.historyPath, bad)
		stack = h
		return err
	})
	if stack == nil {
		stack = NewHistoryStack()
	}
	return stack, err
}

// SaveShortcuts replaces the shortcut file with t.
func (s *Store) SaveShortcuts(t *ShortcutTable) error {
	var buf bytes.Buffer
	if err := EncodeShortcuts(&buf, t); err != nil {
		return fmt.Errorf("%w: encode shortcuts: %w", model.ErrIO, err)
	}
	return s.write(s.shortcutsPath, buf.Bytes())
}

// SaveHistory replaces the history file with h.
func (s *Store) SaveHistory(h *HistoryStack) error {
	var buf bytes.Buffer
	if err := EncodeHistory(&buf, h); err != nil {
		return fmt.Errorf("%w: encode history: %w", model.ErrIO, err)
	}
	return s.write(s.historyPath, buf.Bytes())
}

func (s *Store) read(path string, decode func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.Debug("store file missing, starting empty", zap.String("path", path))
			return nil
		}
		return fmt.Errorf("%w: %w", model.ErrIO, err)
	}
	defer f.Close()

	if err := decode(f); err != nil {
		return fmt.Errorf("%w: read %s: %w", model.ErrIO, path, err)
	}
	return nil
}

func (s *Store) reportBad(path string, bad []BadRecord) {
	for _, b := range bad {
		s.log.Warn("skipping malformed record",
			zap.String("file", path),
			zap.Int("line", b.Line),
			zap.Error(b.Err))
	}
}

// write replaces dest with data: temp file in the same directory, flush,
// fsync, close, rename, then best-effort fsync of the directory. os.Rename
// replaces an existing file on every platform.
func (s *Store) write(dest string, data []byte) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, permDir); err != nil {
		return fmt.Errorf("%w: %w", model.ErrIO, err)
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrIO, err)
	}
	tmpPath := tmp.Name()
	_ = os.Chmod(tmpPath, permFile)

	fail := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: write %s: %w", model.ErrIO, dest, err)
	}

	bw := bufio.NewWriter(tmp)
	if _, err := bw.Write(data); err != nil {
		return fail(err)
	}
	if err := bw.Flush(); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: write %s: %w", model.ErrIO, dest, err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: replace %s: %w", model.ErrIO, dest, err)
	}
	_ = syncDir(dir)

	s.log.Debug("store saved", zap.String("path", dest), zap.Int("bytes", len(data)))
	return nil
}

// syncDir fsyncs dir so the rename survives a crash. Windows cannot sync a
// directory handle; the error is ignored by the caller.
func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
