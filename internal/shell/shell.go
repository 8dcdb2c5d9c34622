package shell

import (
	"path/filepath"
	"strings"
)

// Shell describes the shell that invoked gotodir.
type Shell interface {
	// Name is the shell's own name, also accepted as a "go home" keyword.
	Name() string
	// Keywords are extra tokens that resolve to the home location.
	Keywords() []string
}

// ZshShell implements Shell for Zsh.
type ZshShell struct{}

func (s *ZshShell) Name() string       { return "zsh" }
func (s *ZshShell) Keywords() []string { return nil }

// BashShell implements Shell for Bash.
type BashShell struct{}

func (s *BashShell) Name() string       { return "bash" }
func (s *BashShell) Keywords() []string { return nil }

// FishShell implements Shell for Fish.
type FishShell struct{}

func (s *FishShell) Name() string       { return "fish" }
func (s *FishShell) Keywords() []string { return nil }

// PowerShell implements Shell for PowerShell (Core and Windows PowerShell).
type PowerShell struct{}

func (s *PowerShell) Name() string       { return "pwsh" }
func (s *PowerShell) Keywords() []string { return []string{"powershell"} }

// DetectShell identifies the shell from a path such as $SHELL.
// PowerShell does not set $SHELL, so callers on Windows pass "pwsh".
// Unknown shells fall back to Bash.
func DetectShell(shellPath string) Shell {
	name := strings.ToLower(filepath.Base(strings.ReplaceAll(shellPath, `\`, "/")))
	name = strings.TrimSuffix(name, ".exe")
	switch {
	case strings.Contains(name, "zsh"):
		return &ZshShell{}
	case strings.Contains(name, "fish"):
		return &FishShell{}
	case strings.Contains(name, "pwsh"), strings.Contains(name, "powershell"):
		return &PowerShell{}
	}
	return &BashShell{}
}

// HomeKeywords returns the shell's name followed by its extra keywords.
func HomeKeywords(s Shell) []string {
	return append([]string{s.Name()}, s.Keywords()...)
}
