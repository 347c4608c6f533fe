// Package capture snapshots the visible windows into an arrangement.
package capture

import (
	"fmt"

	"github.com/mj1618/winlayout/internal/model"
	"github.com/mj1618/winlayout/internal/platform"
	"go.uber.org/zap"
)

// Capturer records the geometry and display state of open windows.
type Capturer struct {
	windows platform.WindowService
	logger  *zap.Logger
}

// New creates a Capturer. A nil logger disables logging.
func New(windows platform.WindowService, logger *zap.Logger) *Capturer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Capturer{windows: windows, logger: logger}
}

// Capture builds an arrangement named name from the visible windows.
// Windows whose executable cannot be resolved are skipped; failing to read
// any window's rectangle aborts the capture.
func (c *Capturer) Capture(name string) (*model.Arrangement, error) {
	handles, err := c.windows.ListVisibleWindows()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate windows: %w", err)
	}

	rec := &model.Arrangement{Name: name, Windows: []model.WindowSpec{}}
	for _, h := range handles {
		path, err := c.windows.ModulePath(h)
		if err != nil {
			c.logger.Debug("skipping window without module path", zap.Stringer("window", h), zap.Error(err))
			continue
		}

		spec, err := c.captureWindow(h, path)
		if err != nil {
			return nil, err
		}
		rec.Windows = append(rec.Windows, spec)
	}
	return rec, nil
}

func (c *Capturer) captureWindow(h platform.Handle, path string) (model.WindowSpec, error) {
	spec := model.NewWindowSpec(path)

	state, err := c.windows.DisplayState(h)
	if err != nil {
		c.logger.Warn("failed to read display state, assuming normal", zap.Stringer("window", h), zap.Error(err))
		state = model.Normal
	}

	// A minimized window reports its taskbar icon's geometry, so restore it
	// for the duration of the probe.
	if state == model.Minimized {
		spec.Minimized = true
		c.show(h, model.Normal)
		defer c.show(h, model.Minimized)

		if state, err = c.windows.DisplayState(h); err != nil {
			c.logger.Warn("failed to read display state after restore", zap.Stringer("window", h), zap.Error(err))
			state = model.Normal
		}
	}
	spec.Maximized = state == model.Maximized

	bounds, err := c.windows.Bounds(h)
	if err != nil {
		return spec, fmt.Errorf("failed to get window rect for %s (%s): %w", h, path, err)
	}
	spec.Rect = bounds.Rect()

	c.logger.Debug("captured window",
		zap.Stringer("window", h),
		zap.String("path", path),
		zap.Any("rect", spec.Rect),
		zap.Bool("minimized", spec.Minimized),
		zap.Bool("maximized", spec.Maximized),
	)
	return spec, nil
}

func (c *Capturer) show(h platform.Handle, s model.DisplayState) {
	if err := c.windows.SetDisplayState(h, s); err != nil {
		c.logger.Warn("failed to change display state", zap.Stringer("window", h), zap.Stringer("state", s), zap.Error(err))
	}
}
