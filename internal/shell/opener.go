// Package shell covers what gotodir needs to know about its caller: which
// shell invoked it, and how to start an opener at a resolved path.
package shell

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"gotodir/internal/model"
)

// Launcher starts an opener at a directory.
type Launcher interface {
	Launch(opener, dir string) error
}

// ExecLauncher starts openers as detached child processes.
type ExecLauncher struct {
	// Env is appended to the inherited environment.
	Env []string
}

// Launch runs opener with dir as its last argument and working directory.
// The opener string may carry arguments ("code -n"). The process is started
// and released; gotodir does not wait for editors to exit.
func (l ExecLauncher) Launch(opener, dir string) error {
	fields := strings.Fields(opener)
	if len(fields) == 0 {
		return fmt.Errorf("%w: empty opener", model.ErrOpener)
	}
	args := append(fields[1:], dir)
	cmd := exec.Command(fields[0], args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), l.Env...)
	// The shell wrapper only reads our stdout; keep the child's output away from it.
	cmd.Stdout = nil
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %s: %w", model.ErrOpener, fields[0], err)
	}
	return cmd.Process.Release()
}
