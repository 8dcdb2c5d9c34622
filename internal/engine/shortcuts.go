package engine

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"gotodir/internal/listing"
	"gotodir/internal/model"
	"gotodir/internal/protocol"
)

// AddShortcut stores alias -> path. An empty path means the cwd and an empty
// alias means the base name of the path. An empty opener stores the
// configured default. Auto-saved shortcuts never replace static ones.
func (e *Engine) AddShortcut(alias, path, opener string, flag model.Flag) (protocol.Result, error) {
	path = e.normalize(path)
	if alias == "" {
		alias = filepath.Base(path)
	}
	if opener == "" {
		opener = e.cfg.Opener
	}
	if err := model.ValidateAlias(alias); err != nil {
		return protocol.Result{}, err
	}
	if err := model.ValidatePath(path); err != nil {
		return protocol.Result{}, err
	}
	if err := model.ValidateOpener(opener); err != nil {
		return protocol.Result{}, err
	}

	table, err := e.store.LoadShortcuts()
	if err != nil {
		return protocol.Result{}, err
	}
	if old, ok := table.Get(alias); ok && flag.Auto() && !old.Flag.Auto() {
		e.log.Debug("auto-save skipped, static shortcut exists", zap.String("alias", alias))
		return protocol.Value(fmt.Sprintf("kept %s: %s", alias, old.Path)), nil
	}

	replaced := table.Set(model.Shortcut{Alias: alias, Path: path, Opener: opener, Flag: flag})
	if err := e.store.SaveShortcuts(table); err != nil {
		return protocol.Result{}, err
	}
	verb := "saved"
	if replaced {
		verb = "updated"
	}
	return protocol.Value(fmt.Sprintf("%s %s: %s", verb, alias, path)), nil
}

// RemoveShortcut deletes one shortcut. An unknown alias is model.ErrNotFound
// and the store is not written.
func (e *Engine) RemoveShortcut(alias string) (protocol.Result, error) {
	table, err := e.store.LoadShortcuts()
	if err != nil {
		return protocol.Result{}, err
	}
	removed, err := table.Remove(alias)
	if err != nil {
		return protocol.Result{}, err
	}
	if err := e.store.SaveShortcuts(table); err != nil {
		return protocol.Result{}, err
	}
	return protocol.Value(fmt.Sprintf("removed %s: %s", removed.Alias, removed.Path)), nil
}

// RemoveShortcutsByPath deletes every shortcut pointing at path.
func (e *Engine) RemoveShortcutsByPath(path string) (protocol.Result, error) {
	path = e.normalize(path)
	table, err := e.store.LoadShortcuts()
	if err != nil {
		return protocol.Result{}, err
	}
	removed := table.RemovePath(path)
	if len(removed) == 0 {
		return protocol.Result{}, fmt.Errorf("%w: no shortcut for %s", model.ErrNotFound, path)
	}
	if err := e.store.SaveShortcuts(table); err != nil {
		return protocol.Result{}, err
	}
	aliases := make([]string, len(removed))
	for i, s := range removed {
		aliases[i] = s.Alias
	}
	return protocol.Value(fmt.Sprintf("removed %s: %s", strings.Join(aliases, ", "), path)), nil
}

// RenameShortcut moves a shortcut to a new alias, overwriting any shortcut
// already named to.
func (e *Engine) RenameShortcut(from, to string) (protocol.Result, error) {
	if err := model.ValidateAlias(to); err != nil {
		return protocol.Result{}, err
	}
	table, err := e.store.LoadShortcuts()
	if err != nil {
		return protocol.Result{}, err
	}
	if err := table.Rename(from, to); err != nil {
		return protocol.Result{}, err
	}
	if err := e.store.SaveShortcuts(table); err != nil {
		return protocol.Result{}, err
	}
	return protocol.Value(fmt.Sprintf("renamed %s to %s", from, to)), nil
}

// List renders the shortcut table, or the history stack when history is set.
func (e *Engine) List(history bool) (protocol.Result, error) {
	if history {
		stack, err := e.store.LoadHistory()
		if err != nil {
			return protocol.Result{}, err
		}
		return protocol.Lines(listing.History(stack.Entries(), e.opts.Exists), "history is empty"), nil
	}
	table, err := e.store.LoadShortcuts()
	if err != nil {
		return protocol.Result{}, err
	}
	return protocol.Lines(listing.Shortcuts(table.All(), e.opts.Exists), "no shortcuts"), nil
}

// Clear empties the shortcut table, the history stack, or both.
func (e *Engine) Clear(shortcuts, history bool) (protocol.Result, error) {
	var cleared []string
	if shortcuts {
		table, err := e.store.LoadShortcuts()
		if err != nil {
			return protocol.Result{}, err
		}
		n := table.Len()
		table.Clear()
		if err := e.store.SaveShortcuts(table); err != nil {
			return protocol.Result{}, err
		}
		cleared = append(cleared, fmt.Sprintf("%d shortcuts", n))
	}
	if history {
		stack, err := e.store.LoadHistory()
		if err != nil {
			return protocol.Result{}, err
		}
		n := stack.Len()
		stack.Clear()
		if err := e.store.SaveHistory(stack); err != nil {
			return protocol.Result{}, err
		}
		cleared = append(cleared, fmt.Sprintf("%d history entries", n))
	}
	if len(cleared) == 0 {
		return protocol.Value("nothing to clear"), nil
	}
	return protocol.Value("cleared " + strings.Join(cleared, " and ")), nil
}
