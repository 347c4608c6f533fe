package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// AppDirName is the directory created under the user config directory.
const AppDirName = "winlayout"

// Dirs locates the application's files. Data holds saved arrangements.
type Dirs struct {
	Root   string
	Data   string
	Config string
}

// dirsEnv reads WINLAYOUT_HOME. An explicit envconfig tag would also fall
// back to the unprefixed $HOME.
type dirsEnv struct {
	Home string
}

// DirsAt returns the layout below root.
func DirsAt(root string) Dirs {
	return Dirs{
		Root:   root,
		Data:   filepath.Join(root, "data"),
		Config: filepath.Join(root, "config"),
	}
}

// DefaultDirs returns the layout below WINLAYOUT_HOME if set, otherwise
// below the user's config directory (%AppData% on Windows).
func DefaultDirs() (Dirs, error) {
	var env dirsEnv
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return Dirs{}, err
	}
	if env.Home != "" {
		return DirsAt(env.Home), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return Dirs{}, fmt.Errorf("error finding project directory: %w", err)
	}
	return DirsAt(filepath.Join(base, AppDirName)), nil
}
