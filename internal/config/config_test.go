package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_CreatesDefaultFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "config")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.RetryCount)
	assert.Equal(t, 750*time.Millisecond, cfg.RetryInterval())
	assert.Nil(t, cfg.SystemDir)
	assert.False(t, cfg.SkipUnresolvedWindows)

	_, err = os.Stat(filepath.Join(dir, FileName))
	require.NoError(t, err, "default config file should be written")

	again, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestParse_FileValues(t *testing.T) {
	cfg, err := Parse([]byte(`
retry_count = 2
retry_interval_ms = 100
system_dir = 'D:\Windows'
skip_unresolved_windows = true
`))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.RetryCount)
	assert.Equal(t, 100*time.Millisecond, cfg.RetryInterval())
	assert.Equal(t, `D:\Windows`, cfg.ResolveSystemDir(`C:\Windows`))
	assert.True(t, cfg.SkipUnresolvedWindows)
}

func TestParse_MissingKeysKeepDefaults(t *testing.T) {
	cfg, err := Parse([]byte("retry_count = 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.RetryCount)
	assert.Equal(t, 750, cfg.RetryIntervalMs)
	assert.Equal(t, `C:\Windows`, cfg.ResolveSystemDir(`C:\Windows`))
}

func TestParse_EmptySystemDirDisablesFilter(t *testing.T) {
	cfg, err := Parse([]byte("system_dir = ''\n"))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.ResolveSystemDir(`C:\Windows`))
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("WINLAYOUT_RETRY_COUNT", "9")
	t.Setenv("WINLAYOUT_RETRY_INTERVAL_MS", "10")
	t.Setenv("WINLAYOUT_SKIP_UNRESOLVED_WINDOWS", "true")

	cfg, err := Parse([]byte("retry_count = 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.RetryCount)
	assert.Equal(t, 10, cfg.RetryIntervalMs)
	assert.True(t, cfg.SkipUnresolvedWindows)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"negative count":    "retry_count = -1\n",
		"negative interval": "retry_interval_ms = -5\n",
		"malformed":         "retry_count = \n",
		"wrong type":        "retry_count = 'many'\n",
	}
	for name, doc := range tests {
		_, err := Parse([]byte(doc))
		assert.Error(t, err, name)
	}
}

func TestParse_BadEnvOverride(t *testing.T) {
	t.Setenv("WINLAYOUT_RETRY_COUNT", "lots")
	_, err := Parse(nil)
	assert.Error(t, err)
}

func TestDefaultDirs_HomeOverride(t *testing.T) {
	root := t.TempDir()
	t.Setenv("WINLAYOUT_HOME", root)

	dirs, err := DefaultDirs()
	require.NoError(t, err)
	assert.Equal(t, root, dirs.Root)
	assert.Equal(t, filepath.Join(root, "data"), dirs.Data)
	assert.Equal(t, filepath.Join(root, "config"), dirs.Config)
}

func TestDefaultDirs_IgnoresUserHome(t *testing.T) {
	t.Setenv("WINLAYOUT_HOME", "")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "xdg"))

	dirs, err := DefaultDirs()
	require.NoError(t, err)
	assert.Equal(t, AppDirName, filepath.Base(dirs.Root))
	assert.NotEqual(t, os.Getenv("HOME"), dirs.Root)
}
