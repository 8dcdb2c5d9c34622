package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandWith(t *testing.T) {
	assert.Equal(t, "/home/u", expandWith("~", "/home/u"))
	assert.Equal(t, "/home/u/src", expandWith("~/src", "/home/u"))
	assert.Equal(t, "~user/src", expandWith("~user/src", "/home/u"))
	assert.Equal(t, "/abs", expandWith("/abs", "/home/u"))
}

func TestNormalize(t *testing.T) {
	cwd := filepath.FromSlash("/work/repo")
	assert.Equal(t, cwd, Normalize("", cwd))
	assert.Equal(t, filepath.Join(cwd, "sub"), Normalize("sub", cwd))
	assert.Equal(t, filepath.FromSlash("/work/other"), Normalize("../other", cwd))
	assert.Equal(t, filepath.FromSlash("/etc"), Normalize("/etc/", cwd))

	home, err := os.UserHomeDir()
	if err == nil {
		assert.Equal(t, filepath.Join(home, "x"), Normalize("~/x", cwd))
	}
}

func TestIsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	assert.NoError(t, os.WriteFile(file, nil, 0o644))

	assert.True(t, IsDir(dir))
	assert.False(t, IsDir(file))
	assert.False(t, IsDir(filepath.Join(dir, "missing")))
}

func TestTranslateMount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		unix bool
		want string
	}{
		{"drive to mnt", `C:\Users\me\src`, true, "/mnt/c/Users/me/src"},
		{"bare drive", `D:`, true, "/mnt/d"},
		{"wsl share", `\\wsl.localhost\Ubuntu\home\me`, true, "/home/me"},
		{"unix untouched", "/home/me", true, "/home/me"},
		{"mnt to drive", "/mnt/c/Users/me", false, `C:\Users\me`},
		{"mnt root", "/mnt/d", false, `D:\`},
		{"windows untouched", `C:\x`, false, `C:\x`},
		{"not a drive mount", "/mnt/data2/x", false, "/mnt/data2/x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslateMount(tt.in, tt.unix))
		})
	}
}
