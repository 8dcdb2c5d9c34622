package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tcnksm/go-latest"

	"gotodir/internal/model"
	"gotodir/internal/protocol"
)

// updateChecker reports whether a newer release than current exists.
type updateChecker func(owner, repo, current string) (*latest.CheckResponse, error)

func githubCheck(owner, repo, current string) (*latest.CheckResponse, error) {
	return latest.Check(&latest.GithubTag{Owner: owner, Repository: repo}, current)
}

func (a *app) versionCmd() *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version, optionally checking GitHub for a newer release",
		Args:  argsBetween(0, 0),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := "gotodir " + model.Version
			if !check {
				return a.do(protocol.Value(line), nil)
			}
			msg, err := checkUpdate(a.cfg.UpdateRepo, model.Version, a.checker())
			if err != nil {
				return err
			}
			return a.do(protocol.Value(line, msg), nil)
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "check for a newer release (needs update_repo)")
	return cmd
}

func (a *app) checker() updateChecker {
	if a.check != nil {
		return a.check
	}
	return githubCheck
}

// checkUpdate compares currentVer with the latest tag of repo ("owner/name").
func checkUpdate(repo, currentVer string, check updateChecker) (string, error) {
	if repo == "" {
		return "update check disabled: update_repo is not set", nil
	}
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" {
		return "", fmt.Errorf("%w: update_repo %q is not owner/repo", model.ErrInvalidArgument, repo)
	}

	res, err := check(owner, name, currentVer)
	if err != nil {
		return "", fmt.Errorf("%w: check for updates: %v", model.ErrIO, err)
	}
	if res.Outdated {
		return fmt.Sprintf("a new version is available: %s (you have %s), see https://github.com/%s/releases",
			res.Current, currentVer, repo), nil
	}
	return "you are using the latest version", nil
}
