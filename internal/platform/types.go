package platform

import (
	"errors"
	"fmt"

	"github.com/mj1618/winlayout/internal/model"
)

// Handle is an opaque OS window identifier. It is only meaningful to the
// WindowService that produced it and may be reused by the OS once the
// window is destroyed.
type Handle uintptr

func (h Handle) String() string {
	return fmt.Sprintf("0x%x", uintptr(h))
}

// Bounds are the outer edges of a window in screen coordinates.
type Bounds struct {
	Left, Top, Right, Bottom int
}

// Rect converts the edges into a position and size.
func (b Bounds) Rect() model.Rect {
	return model.RectFromBounds(b.Left, b.Top, b.Right, b.Bottom)
}

// BoundsOf returns the edges of r.
func BoundsOf(r model.Rect) Bounds {
	return Bounds{Left: r.Left, Top: r.Top, Right: r.Right(), Bottom: r.Bottom()}
}

// ErrWindowGone is returned by window operations on a handle whose window
// no longer exists.
var ErrWindowGone = errors.New("window no longer exists")
