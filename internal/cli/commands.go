package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"gotodir/internal/model"
)

func (a *app) rootCmd() *cobra.Command {
	var printOnly bool
	root := &cobra.Command{
		Use:   "gotodir [alias [subpath]]",
		Short: "Jump to directories by alias",
		Long: `gotodir resolves short aliases to directories and prints one result line
for a shell wrapper to act on:

  <clear:0|1>#<mode:0|1>#<payload>[#<extra>...]

Mode 0 asks the wrapper to cd to the payload, mode 1 to print it.
Running gotodir with arguments but no command is the same as "get".`,
		Args:          argsBetween(0, 2),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.do(a.engine.Get(request(args), printOnly))
		},
	}
	root.SetOut(a.stderr)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", model.ErrInvalidArgument, err)
	})
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVar(&a.configDir, "config-dir", "", "directory holding config.yaml, shortcuts and history")
	pf.BoolVarP(&a.clear, "clear", "c", false, "ask the wrapper to clear the screen before changing directory")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")
	printFlag(root.Flags(), &printOnly)

	root.AddCommand(
		a.getCmd(),
		a.openCmd(),
		a.setCmd(),
		a.delCmd(),
		a.renameCmd(),
		a.pushCmd(),
		a.popCmd(),
		a.listCmd(),
		a.adjustCmd(),
		a.decayCmd(),
		a.resetCmd(),
		a.pruneCmd(),
		a.clearCmd(),
		a.configCmd(),
		a.versionCmd(),
	)
	return root
}

func printFlag(fs *pflag.FlagSet, p *bool) {
	fs.BoolVarP(p, "print", "p", false, "print the resolved path instead of changing to it")
}

func request(args []string) model.Request {
	var req model.Request
	if len(args) > 0 {
		req.Primary = args[0]
	}
	if len(args) > 1 {
		req.Subpath = args[1]
	}
	return req
}

func (a *app) getCmd() *cobra.Command {
	var printOnly bool
	cmd := &cobra.Command{
		Use:   "get [alias [subpath]]",
		Short: "Change to an alias, keyword, history entry or directory",
		Long: `Resolves the first argument, in order, as a shortcut alias, a home keyword
(or nothing at all), a back keyword or previously visited directory, and
finally a literal directory. An optional subpath is appended to the result.`,
		Args: argsBetween(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.do(a.engine.Get(request(args), printOnly))
		},
	}
	printFlag(cmd.Flags(), &printOnly)
	return cmd
}

func (a *app) openCmd() *cobra.Command {
	var printOnly, launch bool
	cmd := &cobra.Command{
		Use:   "open <alias> [opener]",
		Short: "Change to an alias and run its opener there",
		Long: `Resolves the alias like "get" and adds the opener (the shortcut's, or the
one given) as an extra field for the wrapper to run in the new directory.
With --launch gotodir starts the opener itself. With --print it stays in
place, prints the path and starts the opener itself.`,
		Args: argsBetween(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := model.Request{Primary: args[0]}
			if len(args) > 1 {
				req.Opener = args[1]
			}
			return a.do(a.engine.Open(req, printOnly, launch))
		},
	}
	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, "stay in place and print the path")
	cmd.Flags().BoolVarP(&launch, "launch", "l", false, "start the opener from gotodir instead of the wrapper")
	return cmd
}

func (a *app) setCmd() *cobra.Command {
	var auto bool
	cmd := &cobra.Command{
		Use:   "set [alias [path [opener]]]",
		Short: "Create or overwrite a shortcut",
		Long: `Stores alias -> path. The path defaults to the current directory and the
alias to the path's base name. The opener defaults to the configured one.`,
		Args: argsBetween(0, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var alias, path, opener string
			switch len(args) {
			case 3:
				opener = args[2]
				fallthrough
			case 2:
				path = args[1]
				fallthrough
			case 1:
				alias = args[0]
			}
			flag := model.FlagStatic
			if auto {
				flag = model.FlagAuto
			}
			return a.do(a.engine.AddShortcut(alias, path, opener, flag))
		},
	}
	cmd.Flags().BoolVar(&auto, "auto", false, "mark as auto-saved; never replaces a user shortcut")
	return cmd
}

func (a *app) delCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:     "del <alias> | del --path <path>",
		Aliases: []string{"rm"},
		Short:   "Remove a shortcut, or every shortcut for a path",
		Args:    argsBetween(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			byPath := cmd.Flags().Changed("path")
			switch {
			case byPath && len(args) == 0:
				return a.do(a.engine.RemoveShortcutsByPath(path))
			case !byPath && len(args) == 1:
				return a.do(a.engine.RemoveShortcut(args[0]))
			}
			return fmt.Errorf("%w: give either an alias or --path", model.ErrInvalidArgument)
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "remove every shortcut pointing at this path")
	return cmd
}

func (a *app) renameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename a shortcut",
		Args:  argsBetween(2, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.do(a.engine.RenameShortcut(args[0], args[1]))
		},
	}
}

func (a *app) pushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push [path]",
		Short: "Push a directory (default: current) onto the history stack",
		Args:  argsBetween(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return a.do(a.engine.PushHistory(path))
		},
	}
}

func (a *app) popCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pop",
		Short: "Change to the top of the history stack (home when empty)",
		Args:  argsBetween(0, 0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.do(a.engine.PopHistory())
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	var history bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List shortcuts or history",
		Long: `Lists shortcuts as marker, alias, path and opener, or with --history the
stack from the top down as index, marker, path and priority.

Markers: ~ auto-saved, ✗ missing directory, † expired, > top of stack.`,
		Args: argsBetween(0, 0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.do(a.engine.List(history))
		},
	}
	cmd.Flags().BoolVar(&history, "history", false, "list the history stack")
	return cmd
}

func (a *app) adjustCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adjust <index|path> <delta>",
		Short: "Add delta to one history entry's priority",
		Args:  argsBetween(2, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, err := parseInt("delta", args[1])
			if err != nil {
				return err
			}
			return a.do(a.engine.AdjustPriority(args[0], delta))
		},
	}
	// "adjust 0 -100": a negative delta is an argument, not a flag.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (a *app) decayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decay [delta]",
		Short: "Lower every history priority (default: decay_step)",
		Args:  argsBetween(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta := -1
			if len(args) == 1 {
				var err error
				if delta, err = parseInt("delta", args[0]); err != nil {
					return err
				}
				if delta < 0 {
					return fmt.Errorf("%w: delta must not be negative", model.ErrInvalidArgument)
				}
			}
			return a.do(a.engine.Decay(delta))
		},
	}
}

func (a *app) resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore every history priority to the ceiling",
		Args:  argsBetween(0, 0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.do(a.engine.Reset())
		},
	}
}

func (a *app) pruneCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Drop expired history entries and cap the stack",
		Args:  argsBetween(0, 0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("max") {
				limit = -1
			} else if limit < 0 {
				return fmt.Errorf("%w: --max must not be negative", model.ErrInvalidArgument)
			}
			return a.do(a.engine.Prune(limit))
		},
	}
	cmd.Flags().IntVar(&limit, "max", 0, "keep at most this many entries, 0 for no cap (default history_max)")
	return cmd
}

func (a *app) clearCmd() *cobra.Command {
	var history, all bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every shortcut (or history entry)",
		Args:  argsBetween(0, 0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.do(a.engine.Clear(all || !history, all || history))
		},
	}
	cmd.Flags().BoolVar(&history, "history", false, "clear the history stack instead")
	cmd.Flags().BoolVar(&all, "all", false, "clear shortcuts and history")
	return cmd
}

func parseInt(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", model.ErrInvalidArgument, name, s)
	}
	return n, nil
}
