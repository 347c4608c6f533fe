// Package platformtest provides an in-memory desktop for exercising code
// written against platform.WindowService and platform.Launcher.
package platformtest

import (
	"fmt"
	"sync"

	"github.com/mj1618/winlayout/internal/model"
	"github.com/mj1618/winlayout/internal/platform"
)


// Window is the scripted state of one fake window.
type Window struct {
	Handle  platform.Handle
	Path    string
	PathErr error
	Bounds  platform.Bounds
	State   model.DisplayState

	// BoundsErr fails Bounds lookups for this window.
	BoundsErr error
	// StickyMaximize keeps the window maximized after the first restore,
	// like shells that need a second restore to leave the maximized state.
	StickyMaximize bool
	// RestoreMaximized returns a minimized window to the maximized state
	// when it is restored, as the OS does for windows minimized while
	// maximized.
	RestoreMaximized bool

	Closed bool
}

// Call records one mutating operation, in order.
type Call struct {
	Op     string
	Handle platform.Handle
	State  model.DisplayState
	Rect   model.Rect
}

// Desktop implements platform.WindowService and platform.Launcher.
type Desktop struct {
	mu      sync.Mutex
	order   []platform.Handle
	windows map[platform.Handle]*Window
	next    platform.Handle

	Calls       []Call
	Launched    []string
	PathLookups map[platform.Handle]int
	ListCount   int

	// LaunchErr fails launches of the given paths.
	LaunchErr map[string]error
	// OnLaunch runs after a successful launch, e.g. to open a window.
	OnLaunch func(d *Desktop, path string, args []string)
	// OnList runs before each enumeration with the 1-based enumeration count.
	OnList func(d *Desktop, n int)
	// ListErr fails enumeration.
	ListErr error
}

// NewDesktop returns an empty desktop.
func NewDesktop() *Desktop {
	return &Desktop{
		windows:     make(map[platform.Handle]*Window),
		next:        0x100,
		PathLookups: make(map[platform.Handle]int),
		LaunchErr:   make(map[string]error),
	}
}

// Open adds a window in the normal state and returns its handle.
func (d *Desktop) Open(path string, b platform.Bounds) platform.Handle {
	return d.Add(&Window{Path: path, Bounds: b})
}

// Add registers w, assigning a handle when w.Handle is zero.
func (d *Desktop) Add(w *Window) platform.Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	if w.Handle == 0 {
		d.next++
		w.Handle = d.next
	}
	d.windows[w.Handle] = w
	d.order = append(d.order, w.Handle)
	return w.Handle
}

// Window returns the scripted state of h.
func (d *Desktop) Window(h platform.Handle) *Window {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.windows[h]
}

// CallsFor returns the recorded operations against h.
func (d *Desktop) CallsFor(h platform.Handle) []Call {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []Call
	for _, c := range d.Calls {
		if c.Handle == h {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many times op was applied to h.
func (d *Desktop) Count(h platform.Handle, op string) int {
	n := 0
	for _, c := range d.CallsFor(h) {
		if c.Op == op {
			n++
		}
	}
	return n
}

func (d *Desktop) ListVisibleWindows() ([]platform.Handle, error) {
	d.mu.Lock()
	d.ListCount++
	n := d.ListCount
	hook := d.OnList
	d.mu.Unlock()

	if hook != nil {
		hook(d, n)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ListErr != nil {
		return nil, d.ListErr
	}
	var out []platform.Handle
	for _, h := range d.order {
		w := d.windows[h]
		if w.Closed {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (d *Desktop) lookup(h platform.Handle) (*Window, error) {
	w, ok := d.windows[h]
	if !ok || w.Closed {
		return nil, fmt.Errorf("%w: %s", platform.ErrWindowGone, h)
	}
	return w, nil
}

func (d *Desktop) ModulePath(h platform.Handle) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.PathLookups[h]++
	w, err := d.lookup(h)
	if err != nil {
		return "", err
	}
	if w.PathErr != nil {
		return "", w.PathErr
	}
	return w.Path, nil
}

func (d *Desktop) Bounds(h platform.Handle) (platform.Bounds, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, err := d.lookup(h)
	if err != nil {
		return platform.Bounds{}, err
	}
	if w.BoundsErr != nil {
		return platform.Bounds{}, w.BoundsErr
	}
	return w.Bounds, nil
}

func (d *Desktop) SetRect(h platform.Handle, r model.Rect) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, err := d.lookup(h)
	if err != nil {
		return err
	}
	d.Calls = append(d.Calls, Call{Op: "set_rect", Handle: h, Rect: r})
	w.Bounds = platform.BoundsOf(r)
	return nil
}

func (d *Desktop) DisplayState(h platform.Handle) (model.DisplayState, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, err := d.lookup(h)
	if err != nil {
		return model.Normal, err
	}
	return w.State, nil
}

func (d *Desktop) SetDisplayState(h platform.Handle, s model.DisplayState) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, err := d.lookup(h)
	if err != nil {
		return err
	}
	d.Calls = append(d.Calls, Call{Op: "show", Handle: h, State: s})
	if s == model.Normal && w.State == model.Maximized && w.StickyMaximize {
		w.StickyMaximize = false
		return nil
	}
	if s == model.Normal && w.State == model.Minimized && w.RestoreMaximized {
		w.State = model.Maximized
		return nil
	}
	w.State = s
	return nil
}

func (d *Desktop) RequestClose(h platform.Handle) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, err := d.lookup(h)
	if err != nil {
		return err
	}
	d.Calls = append(d.Calls, Call{Op: "close", Handle: h})
	w.Closed = true
	return nil
}

func (d *Desktop) Launch(path string, args []string) error {
	d.mu.Lock()
	if err := d.LaunchErr[path]; err != nil {
		d.mu.Unlock()
		return err
	}
	d.Launched = append(d.Launched, path)
	hook := d.OnLaunch
	d.mu.Unlock()

	if hook != nil {
		hook(d, path, args)
	}
	return nil
}

var (
	_ platform.WindowService = (*Desktop)(nil)
	_ platform.Launcher      = (*Desktop)(nil)
)
