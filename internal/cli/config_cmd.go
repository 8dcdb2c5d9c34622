package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"gotodir/internal/config"
	"gotodir/internal/protocol"
)

func (a *app) configCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective settings, or write them to config.yaml",
		Long: `Prints the settings after defaults, the env file, config.yaml and GOTO_*
variables are applied, one yaml line per output line. With --write they are
saved to config.yaml in the configuration directory.`,
		Args: argsBetween(0, 0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if write {
				if err := a.cfg.Save(); err != nil {
					return err
				}
				return a.do(protocol.Value("wrote " + filepath.Join(a.cfg.Dir, config.ConfigFile)), nil)
			}
			data, err := a.cfg.YAML()
			if err != nil {
				return err
			}
			lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
			return a.do(protocol.Lines(lines, ""), nil)
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "save the effective settings to config.yaml")
	return cmd
}
