package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotodir/internal/model"
)

// clearEnv blanks every GOTO_* variable the loader reads.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GOTO_HOME", "GOTO_OPENER", "GOTO_HOME_KEYWORDS", "GOTO_BACK_KEYWORDS",
		"GOTO_PRIORITY_CEILING", "GOTO_DECAY_STEP", "GOTO_HISTORY_MAX",
		"GOTO_TRACK_HISTORY", "GOTO_SKIP_MISSING", "GOTO_CLEAR_SCREEN",
		"GOTO_TRANSLATE_MOUNTS", "GOTO_LOG_LEVEL", "GOTO_UPDATE_REPO",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1000, cfg.PriorityCeiling)
	assert.Equal(t, ShellOpener, cfg.Opener)
	assert.True(t, cfg.TrackHistory)
	assert.Contains(t, cfg.BackKeywords, "-")
	assert.Contains(t, cfg.HomeKeywords, "pwsh")
}

func TestLoadMissingFiles(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, filepath.Join(dir, "shortcuts"), cfg.ShortcutsPath())
	assert.Equal(t, filepath.Join(dir, "history"), cfg.HistoryPath())
}

func TestLoadYAMLThenEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	yamlData := "home: /srv/home\nopener: code\ndecay_step: 25\nhome_keywords: [\"~\", \"h\"]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(yamlData), 0o644))

	t.Setenv("GOTO_DECAY_STEP", "40")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/srv/home", cfg.Home)
	assert.Equal(t, "code", cfg.Opener)
	assert.Equal(t, 40, cfg.DecayStep, "environment should win over yaml")
	assert.Equal(t, []string{"~", "h"}, cfg.HomeKeywords)
	assert.Equal(t, 1000, cfg.PriorityCeiling, "unset keys keep defaults")
}

func TestLoadDotenvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, EnvFile), []byte("GOTO_OPENER=vim\nGOTO_HISTORY_MAX=5\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("GOTO_OPENER")
		os.Unsetenv("GOTO_HISTORY_MAX")
	})

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "vim", cfg.Opener)
	assert.Equal(t, 5, cfg.HistoryMax)
}

func TestLoadBadYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte("home: [unterminated"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidArgument))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Home = "/home/u"
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.PriorityCeiling = 0
	assert.ErrorIs(t, bad.Validate(), model.ErrInvalidArgument)

	bad = cfg
	bad.HistoryMax = -1
	assert.ErrorIs(t, bad.Validate(), model.ErrInvalidArgument)

	bad = cfg
	bad.Home = "/a#b"
	assert.ErrorIs(t, bad.Validate(), model.ErrInvalidArgument)
}

func TestSaveLoad(t *testing.T) {
	clearEnv(t)
	dir := filepath.Join(t.TempDir(), "nested")

	cfg := Default()
	cfg.Dir = dir
	cfg.Home = "/srv/home"
	cfg.Opener = "code"
	cfg.TranslateMounts = true
	require.NoError(t, cfg.Save())

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDefaultDir(t *testing.T) {
	t.Setenv(DirEnv, "/tmp/goto-test")
	dir, err := DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/goto-test", dir)
}

func TestIsShellOpener(t *testing.T) {
	assert.True(t, IsShellOpener("", "bash"))
	assert.True(t, IsShellOpener("shell", "bash"))
	assert.True(t, IsShellOpener("bash", "bash"))
	assert.False(t, IsShellOpener("code", "bash"))
}
