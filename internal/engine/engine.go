// Package engine carries out gotodir commands. Every handler loads the
// stores it needs, resolves or mutates, saves what changed and returns the
// protocol.Result the CLI prints. Handlers never print anything themselves.
package engine

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"

	"gotodir/internal/config"
	"gotodir/internal/model"
	"gotodir/internal/pathutil"
	"gotodir/internal/protocol"
	"gotodir/internal/resolve"
	"gotodir/internal/shell"
	"gotodir/internal/store"
)

// Options describes the calling environment.
type Options struct {
	Cwd      string         // Caller's working directory
	Shell    shell.Shell    // Calling shell; nil means Bash
	Launcher shell.Launcher // Starts openers; nil means shell.ExecLauncher
	Clear    bool           // Ask the wrapper to clear the screen on navigation

	// Hooks for tests. Zero values use the real clock, pid and filesystem.
	Now    func() time.Time
	PID    int
	Exists func(path string) bool
}

// Engine runs commands against one configuration directory.
type Engine struct {
	cfg   config.Config
	store *store.Store
	log   *zap.Logger
	opts  Options
}

// New returns an Engine. A nil logger discards output.
func New(cfg config.Config, st *store.Store, log *zap.Logger, opts Options) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Shell == nil {
		opts.Shell = &shell.BashShell{}
	}
	if opts.Launcher == nil {
		opts.Launcher = shell.ExecLauncher{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.PID == 0 {
		opts.PID = os.Getpid()
	}
	if opts.Exists == nil {
		opts.Exists = pathutil.IsDir
	}
	if opts.Cwd == "" {
		opts.Cwd, _ = os.Getwd()
	}
	return &Engine{cfg: cfg, store: st, log: log, opts: opts}
}

// Get resolves req and navigates there, or with print only reports the path.
func (e *Engine) Get(req model.Request, printOnly bool) (protocol.Result, error) {
	table, stack, err := e.store.Load()
	if err != nil {
		return protocol.Result{}, err
	}
	res, err := e.resolver(table, stack).Resolve(req)
	if err != nil {
		return protocol.Result{}, err
	}
	e.log.Debug("resolved",
		zap.String("request", req.Primary),
		zap.String("source", string(res.Source)),
		zap.String("path", res.Path))

	if printOnly {
		return protocol.Value(res.Path), nil
	}
	return e.navigate(res, stack)
}

// Open resolves req for its opener. By default the result navigates there
// and carries the opener as an extra field for the wrapper to run in the new
// directory. With launch, or with printOnly where there is no navigation to
// attach it to, the opener is started here instead. A shell opener starts
// nothing.
func (e *Engine) Open(req model.Request, printOnly, launch bool) (protocol.Result, error) {
	table, stack, err := e.store.Load()
	if err != nil {
		return protocol.Result{}, err
	}
	res, err := e.resolver(table, stack).Resolve(req)
	if err != nil {
		return protocol.Result{}, err
	}

	external := !config.IsShellOpener(res.Opener, e.opts.Shell.Name())
	if external && (launch || printOnly) {
		e.log.Debug("launching opener", zap.String("opener", res.Opener), zap.String("path", res.Path))
		if err := e.opts.Launcher.Launch(res.Opener, res.Path); err != nil {
			return protocol.Result{}, err
		}
		external = false
	}
	if printOnly {
		return protocol.Value(res.Path), nil
	}
	out, err := e.navigate(res, stack)
	if err != nil {
		return protocol.Result{}, err
	}
	if external {
		out.Extra = []string{res.Opener}
	}
	return out, nil
}

func (e *Engine) resolver(table *store.ShortcutTable, stack *store.HistoryStack) *resolve.Resolver {
	keywords := append(append([]string(nil), e.cfg.HomeKeywords...), shell.HomeKeywords(e.opts.Shell)...)
	return resolve.New(table, stack, resolve.Options{
		Home:            e.cfg.Home,
		DefaultOpener:   e.cfg.Opener,
		HomeKeywords:    keywords,
		BackKeywords:    e.cfg.BackKeywords,
		Cwd:             e.opts.Cwd,
		TranslateMounts: e.cfg.TranslateMounts,
		Unix:            runtime.GOOS != "windows",
	})
}

// navigate emits a cd result for res. A history match is consumed and the
// caller's cwd is remembered when history tracking is on.
func (e *Engine) navigate(res model.Resolution, stack *store.HistoryStack) (protocol.Result, error) {
	if !protocol.Safe(res.Path) {
		return protocol.Result{}, fmt.Errorf("%w: path %q cannot be navigated to", model.ErrInvalidArgument, res.Path)
	}

	changed := false
	if res.Source == model.SourceHistory && res.HistoryIndex >= 0 {
		if _, err := stack.RemoveAt(res.HistoryIndex); err == nil {
			changed = true
		}
	}
	if e.cfg.TrackHistory && e.opts.Cwd != "" && e.opts.Cwd != res.Path && protocol.Safe(e.opts.Cwd) {
		stack.Push(e.entry(e.opts.Cwd))
		changed = true
	}
	if changed {
		if err := e.store.SaveHistory(stack); err != nil {
			return protocol.Result{}, err
		}
	}
	return e.cd(res.Path), nil
}

func (e *Engine) cd(path string) protocol.Result {
	return protocol.Navigate(path).WithClear(e.opts.Clear)
}

func (e *Engine) entry(path string) model.HistoryEntry {
	return model.HistoryEntry{
		Path:     path,
		Priority: e.cfg.PriorityCeiling,
		PID:      e.opts.PID,
		Time:     e.opts.Now().Truncate(time.Second),
	}
}

// normalize resolves path against the caller's cwd; empty means the cwd.
func (e *Engine) normalize(path string) string {
	if e.cfg.TranslateMounts {
		path = pathutil.TranslateMount(path, runtime.GOOS != "windows")
	}
	return pathutil.Normalize(path, e.opts.Cwd)
}
