// Package cli is the gotodir command line. It parses one command, runs it
// through the engine and writes exactly one protocol line to stdout. Help,
// usage and logs go to stderr so the shell wrapper only ever reads results.
package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gotodir/internal/config"
	"gotodir/internal/engine"
	"gotodir/internal/model"
	"gotodir/internal/protocol"
	"gotodir/internal/shell"
	"gotodir/internal/store"
)

// Run executes args (without the program name) and returns the exit status.
func Run(args []string, stdout, stderr io.Writer) int {
	return newApp(stdout, stderr).run(args)
}

type app struct {
	stdout io.Writer
	stderr io.Writer

	// Global flags
	configDir string
	clear     bool
	verbose   bool

	// Environment, replaceable in tests
	cwd       string
	shellPath string
	launcher  shell.Launcher
	check     updateChecker

	cfg    config.Config
	log    *zap.Logger
	engine *engine.Engine
	result protocol.Result
}

func newApp(stdout, stderr io.Writer) *app {
	cwd, _ := os.Getwd()
	shellPath := os.Getenv("SHELL")
	if shellPath == "" && runtime.GOOS == "windows" {
		shellPath = "pwsh"
	}
	return &app{
		stdout:    stdout,
		stderr:    stderr,
		cwd:       cwd,
		shellPath: shellPath,
		log:       zap.NewNop(),
		result:    protocol.Value(""),
	}
}

func (a *app) run(args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)

	err := root.Execute()
	res := a.result
	if err != nil {
		a.log.Debug("command failed", zap.Error(err))
		res = protocol.FromError(err)
	}
	_ = a.log.Sync()

	if _, err := res.WriteTo(a.stdout); err != nil {
		fmt.Fprintf(a.stderr, "gotodir: write result: %v\n", err)
		return protocol.ExitIO
	}
	return res.Status
}

// setup loads the configuration and builds the logger, store and engine.
func (a *app) setup(cmd *cobra.Command) error {
	dir := a.configDir
	if dir == "" {
		var err error
		if dir, err = config.DefaultDir(); err != nil {
			return fmt.Errorf("%w: %v", model.ErrIO, err)
		}
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.log, err = a.newLogger(cfg.LogLevel); err != nil {
		return err
	}

	clearScreen := cfg.ClearScreen
	if cmd.Flags().Changed("clear") {
		clearScreen = a.clear
	}
	st := store.New(cfg.ShortcutsPath(), cfg.HistoryPath(), a.log.Named("store"))
	a.engine = engine.New(cfg, st, a.log.Named("engine"), engine.Options{
		Cwd:      a.cwd,
		Shell:    shell.DetectShell(a.shellPath),
		Launcher: a.launcher,
		Clear:    clearScreen,
	})
	a.log.Debug("configured",
		zap.String("dir", cfg.Dir),
		zap.String("command", cmd.Name()),
		zap.String("cwd", a.cwd))
	return nil
}

// newLogger logs to stderr in console format; --verbose forces debug.
func (a *app) newLogger(level string) (*zap.Logger, error) {
	lvl := zapcore.WarnLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("%w: log_level: %v", model.ErrInvalidArgument, err)
		}
		lvl = parsed
	}
	if a.verbose {
		lvl = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(a.stderr), zap.NewAtomicLevelAt(lvl))
	return zap.New(core).Named("gotodir"), nil
}

// do stores the outcome of a handler for run to emit.
func (a *app) do(res protocol.Result, err error) error {
	if err != nil {
		return err
	}
	a.result = res
	return nil
}

func argsBetween(lo, hi int) cobra.PositionalArgs {
	check := cobra.RangeArgs(lo, hi)
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", model.ErrInvalidArgument, err)
		}
		return nil
	}
}
