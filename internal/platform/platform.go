package platform

import "github.com/mj1618/winlayout/internal/model"

// WindowService reads and manipulates top-level windows through the OS.
// Handles are snapshots: callers re-enumerate rather than cache them.
type WindowService interface {
	// ListVisibleWindows returns the visible, titled top-level windows in
	// enumeration order.
	ListVisibleWindows() ([]Handle, error)

	// ModulePath returns the executable path of the process owning the window.
	ModulePath(h Handle) (string, error)

	// Bounds returns the window's outer edges in screen coordinates.
	Bounds(h Handle) (Bounds, error)

	// SetRect moves and resizes the window without changing its z-order.
	SetRect(h Handle, r model.Rect) error

	DisplayState(h Handle) (model.DisplayState, error)
	SetDisplayState(h Handle, s model.DisplayState) error

	// RequestClose posts a close request; the application may refuse it.
	RequestClose(h Handle) error
}

// Launcher starts applications.
type Launcher interface {
	// Launch spawns path with args, detached from our standard streams.
	// It does not wait for the process to create a window.
	Launch(path string, args []string) error
}

// DirOpener shows a directory in the desktop file manager.
type DirOpener interface {
	OpenDir(path string) error
}
