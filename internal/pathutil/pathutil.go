// Package pathutil normalises user-supplied paths before they are stored or
// resolved.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde expands a leading ~ to the user's home directory.
func ExpandTilde(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return expandWith(path, home)
}

func expandWith(path, home string) string {
	switch {
	case path == "~":
		return home
	case strings.HasPrefix(path, "~/"), strings.HasPrefix(path, `~\`):
		return filepath.Join(home, path[2:])
	}
	return path
}

// Normalize turns path into a clean absolute path, expanding ~ and
// resolving relative paths against cwd. An empty path yields cwd.
func Normalize(path, cwd string) string {
	if path == "" {
		return filepath.Clean(cwd)
	}
	path = ExpandTilde(path)
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}
	return filepath.Clean(path)
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// TranslateMount converts between Windows drive paths and their WSL mount
// points: on unix "C:\x\y" becomes "/mnt/c/x/y" and "\\wsl.localhost\Distro\x"
// becomes "/x"; elsewhere "/mnt/c/x" becomes "C:\x". Other paths are returned
// unchanged.
func TranslateMount(path string, unix bool) string {
	if unix {
		if len(path) >= 2 && path[1] == ':' && isLetter(path[0]) {
			rest := strings.TrimLeft(strings.ReplaceAll(path[2:], `\`, "/"), "/")
			drive := strings.ToLower(path[:1])
			if rest == "" {
				return "/mnt/" + drive
			}
			return "/mnt/" + drive + "/" + rest
		}
		if idx := strings.Index(path, "wsl.localhost"); idx >= 0 {
			rest := strings.ReplaceAll(path[idx+len("wsl.localhost"):], `\`, "/")
			rest = strings.TrimLeft(rest, "/")
			// Drop the distribution name.
			if slash := strings.Index(rest, "/"); slash >= 0 {
				return "/" + rest[slash+1:]
			}
			return "/"
		}
		return path
	}

	if strings.HasPrefix(path, "/mnt/") && len(path) >= 6 && isLetter(path[5]) && (len(path) == 6 || path[6] == '/') {
		drive := strings.ToUpper(path[5:6])
		rest := strings.ReplaceAll(path[6:], "/", `\`)
		if rest == "" {
			rest = `\`
		}
		return drive + ":" + rest
	}
	return path
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
