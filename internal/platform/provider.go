package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Windows  WindowService
	Launcher Launcher
	Opener   DirOpener

	// SystemDir is the OS directory whose windows are never arranged
	// (e.g. C:\Windows). Empty disables the filter.
	SystemDir string

	// FoldCase reports whether file paths compare case-insensitively.
	FoldCase bool
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("window management is not supported on %s/%s; supported: windows/amd64, windows/arm64", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/win32/init.go for the Windows registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
