package pathpattern

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, paths ...string) {
	t.Helper()
	for _, p := range paths {
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("bin"), 0o755))
	}
}

func TestExpand_SortedFilesOnly(t *testing.T) {
	root := t.TempDir()
	touch(t,
		filepath.Join(root, "apps", "v2", "editor.exe"),
		filepath.Join(root, "apps", "v1", "editor.exe"),
		filepath.Join(root, "apps", "v10", "editor.exe"),
	)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "apps", "v3", "editor.exe"), 0o755))

	r := New()
	got, err := r.Expand(filepath.Join(root, "apps", "v*", "editor.exe"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "apps", "v1", "editor.exe"),
		filepath.Join(root, "apps", "v10", "editor.exe"),
		filepath.Join(root, "apps", "v2", "editor.exe"),
	}, got)
}

func TestExpand_NoMatches(t *testing.T) {
	r := New()
	got, err := r.Expand(filepath.Join(t.TempDir(), "missing", "*.exe"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExpand_InvalidPattern(t *testing.T) {
	called := false
	r := New(WithGlob(func(string) ([]string, error) {
		called = true
		return nil, nil
	}))
	for _, p := range []string{"", "C:/Apps/[abc", "C:/Apps/{a,b"} {
		_, err := r.Expand(p)
		assert.True(t, errors.Is(err, ErrBadPattern), "%q: %v", p, err)
	}
	assert.False(t, called, "glob must not run for invalid patterns")
}

func TestExpand_UsesInjectedGlobWithSlashes(t *testing.T) {
	var seen string
	r := New(WithGlob(func(p string) ([]string, error) {
		seen = p
		return []string{`C:\b.exe`, `C:\a.exe`}, nil
	}))
	got, err := r.Expand(`C:\Apps\*.exe`)
	require.NoError(t, err)
	assert.Equal(t, "C:/Apps/*.exe", seen)
	assert.Equal(t, []string{`C:\a.exe`, `C:\b.exe`}, got)
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		fold     bool
		pattern  string
		path     string
		expected bool
	}{
		{"literal forward slashes vs backslash path", false, "C:/Apps/editor.exe", `C:\Apps\editor.exe`, true},
		{"backslash pattern", false, `C:\Apps\*.exe`, `C:\Apps\editor.exe`, true},
		{"star does not cross separators", false, "C:/Apps/*.exe", `C:\Apps\sub\editor.exe`, false},
		{"doublestar crosses separators", false, "C:/Apps/**/*.exe", `C:\Apps\sub\editor.exe`, true},
		{"question mark", false, "C:/Apps/app?.exe", "C:/Apps/app1.exe", true},
		{"bracket class", false, "C:/Apps/app[0-9].exe", "C:/Apps/appx.exe", false},
		{"case sensitive by default", false, "C:/apps/editor.exe", "C:/Apps/editor.exe", false},
		{"fold case", true, "C:/apps/EDITOR.exe", "c:/Apps/editor.EXE", true},
		{"different file", false, "C:/Apps/editor.exe", "C:/Apps/viewer.exe", false},
		{"network share literal", true, `\\server\share\tools\app.exe`, `\\server\share\tools\app.exe`, true},
		{"network share glob", true, `\\server\share\*\app.exe`, `\\server\share\tools\app.exe`, true},
		{"network share vs rooted path", false, `\\server\share\tools\app.exe`, `\server\share\tools\app.exe`, false},
		{"dot segment in pattern", false, `C:\Apps\.\editor.exe`, `C:\Apps\editor.exe`, true},
		{"dot segment in path", false, `C:\Apps\editor.exe`, `C:\Apps\.\editor.exe`, true},
		{"dot segment on both sides", true, `C:\Apps\.\*.exe`, `C:\Apps\.\editor.exe`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(WithFoldCase(tt.fold))
			got, err := r.Match(tt.pattern, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMatch_InvalidPattern(t *testing.T) {
	r := New()
	ok, err := r.Match("C:/Apps/[editor.exe", "C:/Apps/editor.exe")
	assert.False(t, ok)
	assert.True(t, errors.Is(err, ErrBadPattern))
}

func TestSame(t *testing.T) {
	r := New()
	assert.True(t, r.Same(`C:\Apps\editor.exe`, "C:/Apps/editor.exe"))
	assert.False(t, r.Same(`C:\apps\editor.exe`, "C:/Apps/editor.exe"))

	folded := New(WithFoldCase(true))
	assert.True(t, folded.Same(`C:\apps\editor.exe`, "C:/Apps/Editor.exe"))
	assert.True(t, folded.Same(`\\server\share\app.exe`, "//SERVER/share/app.exe"))
	assert.False(t, folded.Same(`\\server\share\app.exe`, `\server\share\app.exe`))
}

func TestUnder(t *testing.T) {
	r := New()
	tests := []struct {
		path, dir string
		expected  bool
	}{
		{`C:\Windows\explorer.exe`, `C:\Windows`, true},
		{`c:/windows/system32/dwm.exe`, `C:\Windows\`, true},
		{`C:\WINDOWS\explorer.exe`, "c:/windows", true},
		{`C:\WindowsApps\app.exe`, `C:\Windows`, false},
		{`C:\Apps\editor.exe`, `C:\Windows`, false},
		{`C:\Windows\explorer.exe`, "", false},
		{`\\server\share\tools\app.exe`, `\\server\share`, true},
		{`\\server\share\tools\app.exe`, `\server\share`, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, r.Under(tt.path, tt.dir), "%s under %s", tt.path, tt.dir)
	}
}
