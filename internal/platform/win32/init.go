//go:build windows

package win32

import (
	"os/exec"
	"syscall"

	"github.com/mj1618/winlayout/internal/platform"
	"golang.org/x/sys/windows"
)

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		systemDir, err := windows.GetSystemWindowsDirectory()
		if err != nil {
			systemDir = `C:\Windows`
		}
		launcher := platform.NewExecLauncher()
		launcher.Configure = detach
		return &platform.Provider{
			Windows:   NewWindowService(),
			Launcher:  launcher,
			Opener:    NewOpener(),
			SystemDir: systemDir,
			FoldCase:  true,
		}, nil
	}
}

// detach starts the child in its own process group so console signals sent
// to us do not reach it.
func detach(c *exec.Cmd) {
	c.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NEW_PROCESS_GROUP,
	}
}
