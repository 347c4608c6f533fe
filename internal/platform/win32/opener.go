//go:build windows

package win32

import (
	"fmt"

	"github.com/mj1618/winlayout/internal/platform"
	"golang.org/x/sys/windows"
)

const swNormal = 1

// Win32Opener opens directories in Explorer through ShellExecute.
type Win32Opener struct{}

// NewOpener creates a new Windows directory opener.
func NewOpener() *Win32Opener {
	return &Win32Opener{}
}

func (o *Win32Opener) OpenDir(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return fmt.Errorf("invalid directory path %q: %w", path, err)
	}
	if err := windows.ShellExecute(0, nil, p, nil, nil, swNormal); err != nil {
		return fmt.Errorf("failed to open directory %s: %w", path, err)
	}
	return nil
}

var _ platform.DirOpener = (*Win32Opener)(nil)
