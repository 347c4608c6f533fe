//go:build windows

package win32

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/mj1618/winlayout/internal/model"
	"github.com/mj1618/winlayout/internal/platform"
	"golang.org/x/sys/windows"
)

const (
	swMaximize = 3
	swMinimize = 6
	swRestore  = 9

	swpNoZOrder  = 0x0004
	swpNoActive  = 0x0010
	wmClose      = 0x0010
	hwndTop      = 0
	maxPathChars = 32 * 1024
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procEnumWindows          = user32.NewProc("EnumWindows")
	procIsWindow             = user32.NewProc("IsWindow")
	procIsWindowVisible      = user32.NewProc("IsWindowVisible")
	procGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")
	procGetWindowRect        = user32.NewProc("GetWindowRect")
	procSetWindowPos         = user32.NewProc("SetWindowPos")
	procShowWindow           = user32.NewProc("ShowWindow")
	procIsIconic             = user32.NewProc("IsIconic")
	procIsZoomed             = user32.NewProc("IsZoomed")
	procPostMessageW         = user32.NewProc("PostMessageW")
)

// The runtime caps the number of callbacks a process may create, so the
// enumeration callback is allocated once and guarded by enumMu.
var (
	enumMu       sync.Mutex
	enumHandles  []platform.Handle
	enumCallback = windows.NewCallback(func(hwnd, _ uintptr) uintptr {
		if isVisible(hwnd) && hasTitle(hwnd) {
			enumHandles = append(enumHandles, platform.Handle(hwnd))
		}
		return 1
	})
)

func isVisible(hwnd uintptr) bool {
	r, _, _ := procIsWindowVisible.Call(hwnd)
	return r != 0
}

func hasTitle(hwnd uintptr) bool {
	r, _, _ := procGetWindowTextLengthW.Call(hwnd)
	return r != 0
}

// Win32WindowService implements platform.WindowService with user32.
type Win32WindowService struct{}

// NewWindowService creates a new Windows window service.
func NewWindowService() *Win32WindowService {
	return &Win32WindowService{}
}

func (s *Win32WindowService) ListVisibleWindows() ([]platform.Handle, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumHandles = nil
	r, _, err := procEnumWindows.Call(enumCallback, 0)
	if r == 0 {
		return nil, fmt.Errorf("EnumWindows: %w", err)
	}
	out := enumHandles
	enumHandles = nil
	return out, nil
}

// alive maps calls on destroyed windows to platform.ErrWindowGone.
func alive(h platform.Handle) error {
	r, _, _ := procIsWindow.Call(uintptr(h))
	if r == 0 {
		return fmt.Errorf("%w: %s", platform.ErrWindowGone, h)
	}
	return nil
}

func (s *Win32WindowService) ModulePath(h platform.Handle) (string, error) {
	var pid uint32
	if _, err := windows.GetWindowThreadProcessId(windows.HWND(h), &pid); err != nil || pid == 0 {
		if gone := alive(h); gone != nil {
			return "", gone
		}
		return "", fmt.Errorf("failed to get window process ID: %w", err)
	}

	proc, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return "", fmt.Errorf("failed to get handle for process %d: %w", pid, err)
	}
	defer windows.CloseHandle(proc)

	buf := make([]uint16, maxPathChars)
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(proc, 0, &buf[0], &size); err != nil {
		return "", fmt.Errorf("failed to get module path for process %d: %w", pid, err)
	}
	return windows.UTF16ToString(buf[:size]), nil
}

func (s *Win32WindowService) Bounds(h platform.Handle) (platform.Bounds, error) {
	var rect windows.Rect
	r, _, err := procGetWindowRect.Call(uintptr(h), uintptr(unsafe.Pointer(&rect)))
	if r == 0 {
		if gone := alive(h); gone != nil {
			return platform.Bounds{}, gone
		}
		return platform.Bounds{}, fmt.Errorf("GetWindowRect: %w", err)
	}
	return platform.Bounds{
		Left:   int(rect.Left),
		Top:    int(rect.Top),
		Right:  int(rect.Right),
		Bottom: int(rect.Bottom),
	}, nil
}

func (s *Win32WindowService) SetRect(h platform.Handle, rect model.Rect) error {
	r, _, err := procSetWindowPos.Call(
		uintptr(h),
		hwndTop,
		uintptr(rect.Left),
		uintptr(rect.Top),
		uintptr(rect.Width),
		uintptr(rect.Height),
		swpNoZOrder|swpNoActive,
	)
	if r == 0 {
		if gone := alive(h); gone != nil {
			return gone
		}
		return fmt.Errorf("SetWindowPos: %w", err)
	}
	return nil
}

func (s *Win32WindowService) DisplayState(h platform.Handle) (model.DisplayState, error) {
	if err := alive(h); err != nil {
		return model.Normal, err
	}
	if r, _, _ := procIsIconic.Call(uintptr(h)); r != 0 {
		return model.Minimized, nil
	}
	if r, _, _ := procIsZoomed.Call(uintptr(h)); r != 0 {
		return model.Maximized, nil
	}
	return model.Normal, nil
}

// SetDisplayState calls ShowWindow. Its return value is the previous
// visibility, not success, so only a destroyed window is reported.
func (s *Win32WindowService) SetDisplayState(h platform.Handle, state model.DisplayState) error {
	if err := alive(h); err != nil {
		return err
	}
	var cmd uintptr
	switch state {
	case model.Minimized:
		cmd = swMinimize
	case model.Maximized:
		cmd = swMaximize
	default:
		cmd = swRestore
	}
	procShowWindow.Call(uintptr(h), cmd)
	return nil
}

func (s *Win32WindowService) RequestClose(h platform.Handle) error {
	r, _, err := procPostMessageW.Call(uintptr(h), wmClose, 0, 0)
	if r == 0 {
		if gone := alive(h); gone != nil {
			return gone
		}
		return fmt.Errorf("PostMessageW(WM_CLOSE): %w", err)
	}
	return nil
}

var _ platform.WindowService = (*Win32WindowService)(nil)
