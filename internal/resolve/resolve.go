// Package resolve turns a navigation request into a concrete directory.
//
// Tiers are tried in order and the first match wins:
//
//  1. an exact shortcut alias (shortcuts shadow same-named directories)
//  2. the home location, for an empty request or a home keyword
//  3. the history stack, for a back keyword or a previously visited path
//  4. the request itself, when it names an existing directory
//
// Anything else is model.ErrUnknownLocation.
package resolve

import (
	"fmt"
	"path/filepath"
	"slices"

	"gotodir/internal/model"
	"gotodir/internal/pathutil"
	"gotodir/internal/store"
)

// Options configures a Resolver.
type Options struct {
	Home            string   // Target of an empty request
	DefaultOpener   string   // Used when neither the request nor the shortcut names one
	HomeKeywords    []string // Tokens meaning "home" (e.g. "~", "pwsh")
	BackKeywords    []string // Tokens meaning "top of history" (e.g. "-")
	Cwd             string   // Caller's working directory, for relative paths
	TranslateMounts bool     // Map Windows drive paths to/from WSL mounts
	Unix            bool     // Direction of mount translation
}

// Resolver resolves requests against a shortcut table and a history stack.
// It never modifies either; callers act on the returned Resolution.
type Resolver struct {
	shortcuts *store.ShortcutTable
	history   *store.HistoryStack
	opts      Options
}

// New returns a Resolver. A nil history is treated as empty.
func New(shortcuts *store.ShortcutTable, history *store.HistoryStack, opts Options) *Resolver {
	if shortcuts == nil {
		shortcuts = store.NewShortcutTable()
	}
	if history == nil {
		history = store.NewHistoryStack()
	}
	return &Resolver{shortcuts: shortcuts, history: history, opts: opts}
}

// Resolve finds the directory and opener for req.
func (r *Resolver) Resolve(req model.Request) (model.Resolution, error) {
	res := model.Resolution{HistoryIndex: -1}

	s, isAlias := r.shortcuts.Get(req.Primary)
	switch {
	case req.Primary != "" && isAlias:
		res.Source = model.SourceAlias
		res.Path = s.Path
		res.Shortcut = &s

	case req.Primary == "" || slices.Contains(r.opts.HomeKeywords, req.Primary):
		res.Source = model.SourceHome
		res.Path = r.opts.Home

	default:
		if idx := r.historyMatch(req.Primary); idx >= 0 {
			e, _ := r.history.At(idx)
			res.Source = model.SourceHistory
			res.Path = e.Path
			res.HistoryIndex = idx
			break
		}
		if slices.Contains(r.opts.BackKeywords, req.Primary) {
			// Nothing to go back to: behave like popping an empty stack.
			res.Source = model.SourceHome
			res.Path = r.opts.Home
			break
		}
		literal := pathutil.Normalize(r.translate(req.Primary), r.opts.Cwd)
		if !pathutil.IsDir(literal) {
			return model.Resolution{}, fmt.Errorf("%w: %s", model.ErrUnknownLocation, req.Primary)
		}
		res.Source = model.SourceLiteral
		res.Path = literal
	}

	res.Path = r.translate(res.Path)
	if req.Subpath != "" {
		res.Path = filepath.Join(res.Path, req.Subpath)
	}
	res.Opener = r.opener(req, res.Shortcut)
	return res, nil
}

// historyMatch returns the history index a token refers to, or -1.
func (r *Resolver) historyMatch(token string) int {
	if slices.Contains(r.opts.BackKeywords, token) {
		if r.history.Len() == 0 {
			return -1
		}
		return 0
	}
	full := pathutil.Normalize(r.translate(token), r.opts.Cwd)
	return r.history.Find(func(e model.HistoryEntry) bool {
		return e.Path == full || filepath.Base(e.Path) == token
	})
}

func (r *Resolver) opener(req model.Request, s *model.Shortcut) string {
	if req.Opener != "" {
		return req.Opener
	}
	if s != nil && s.Opener != "" {
		return s.Opener
	}
	return r.opts.DefaultOpener
}

func (r *Resolver) translate(path string) string {
	if !r.opts.TranslateMounts {
		return path
	}
	return pathutil.TranslateMount(path, r.opts.Unix)
}
