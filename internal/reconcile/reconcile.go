package reconcile

import (
	"errors"
	"fmt"
	"time"

	"github.com/mj1618/winlayout/internal/model"
	"github.com/mj1618/winlayout/internal/platform"
	"go.uber.org/zap"
)

// PathResolver expands and matches executable path patterns.
type PathResolver interface {
	Expand(pattern string) ([]string, error)
	Match(pattern, path string) (bool, error)
	Same(a, b string) bool
	Under(path, dir string) bool
}

// Options control a single restore.
type Options struct {
	// CloseForeign posts a close request to windows matching no spec.
	CloseForeign bool
	// MinimizeForeign minimizes windows matching no spec. CloseForeign wins
	// when both are set.
	MinimizeForeign bool

	// MaxAttempts bounds the polling passes; zero skips matching entirely.
	MaxAttempts int
	// Interval is slept before every pass, including the first.
	Interval time.Duration

	// SystemDir excludes windows of executables below it from matching and
	// disposal. Empty disables the filter.
	SystemDir string
	// SkipUnresolved ignores windows whose executable path cannot be read
	// instead of failing the restore.
	SkipUnresolved bool
}

// Reconciler drives restores against a window service.
type Reconciler struct {
	windows  platform.WindowService
	launcher platform.Launcher
	paths    PathResolver
	logger   *zap.Logger
	sleep    func(time.Duration)
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithSleep replaces time.Sleep between polling passes.
func WithSleep(fn func(time.Duration)) Option {
	return func(r *Reconciler) { r.sleep = fn }
}

// New creates a Reconciler. A nil logger disables logging.
func New(windows platform.WindowService, launcher platform.Launcher, paths PathResolver, logger *zap.Logger, opts ...Option) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Reconciler{
		windows:  windows,
		launcher: launcher,
		paths:    paths,
		logger:   logger,
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Restore launches, matches and repositions the windows described by rec.
// It blocks for up to opts.MaxAttempts * opts.Interval and cannot be
// cancelled. Only enumeration failures and, unless opts.SkipUnresolved is
// set, unreadable executable paths fail the call; every other problem is
// logged and the affected spec or window is skipped.
func (r *Reconciler) Restore(rec *model.Arrangement, opts Options) (*Result, error) {
	result := &Result{
		Name:     rec.Name,
		Launched: []string{},
		Matches:  []Match{},
	}

	initial, err := r.windows.ListVisibleWindows()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate windows: %w", err)
	}
	r.launchMissing(rec, r.runningPaths(initial), result)

	st := newState(len(rec.Windows))
	for attempt := 1; attempt <= opts.MaxAttempts && len(st.pending) > 0; attempt++ {
		r.sleep(opts.Interval)

		summary, err := r.pass(rec, opts, st, result)
		if err != nil {
			return nil, err
		}
		summary.Number = attempt
		summary.Pending = len(st.pending)
		result.History = append(result.History, summary)

		r.logger.Debug("reconciliation attempt finished",
			zap.Int("attempt", attempt),
			zap.Int("windows", summary.Windows),
			zap.Int("matched", summary.Matched),
			zap.Int("excluded", summary.Excluded),
			zap.Int("pending", summary.Pending),
		)
	}

	result.Pending = st.pendingIndices()
	result.Excluded = len(st.excluded)
	if len(result.Pending) > 0 {
		r.logger.Info("some windows did not appear",
			zap.String("arrangement", rec.Name),
			zap.Ints("pending", result.Pending),
			zap.Int("attempts", result.Attempts()),
		)
	}
	return result, nil
}

// runningPaths resolves the executables behind the windows open before any
// launch. Unreadable windows are ignored here.
func (r *Reconciler) runningPaths(handles []platform.Handle) []string {
	paths := make([]string, 0, len(handles))
	for _, h := range handles {
		p, err := r.windows.ModulePath(h)
		if err != nil {
			r.logger.Debug("failed to get module path from window handle", zap.Stringer("window", h), zap.Error(err))
			continue
		}
		paths = append(paths, p)
	}
	return paths
}

// pass classifies every window not seen before in this restore.
func (r *Reconciler) pass(rec *model.Arrangement, opts Options, st *state, result *Result) (Attempt, error) {
	handles, err := r.windows.ListVisibleWindows()
	if err != nil {
		return Attempt{}, fmt.Errorf("failed to enumerate windows: %w", err)
	}
	summary := Attempt{Windows: len(handles)}

	for _, h := range handles {
		if st.classified(h) {
			continue
		}

		path, err := r.windows.ModulePath(h)
		if err != nil {
			if opts.SkipUnresolved {
				r.logger.Warn("skipping window without module path", zap.Stringer("window", h), zap.Error(err))
				continue
			}
			return Attempt{}, fmt.Errorf("failed to get module path from window handle %s: %w", h, err)
		}
		if opts.SystemDir != "" && r.paths.Under(path, opts.SystemDir) {
			continue
		}

		spec, ok := r.match(rec, st, path)
		if !ok {
			r.dispose(h, path, opts)
			st.exclude(h)
			summary.Excluded++
			continue
		}

		st.assign(h, spec)
		summary.Matched++
		m := Match{Spec: spec, Window: h, Handle: h.String(), Path: path}
		if rec.Windows[spec].Reposition {
			r.reposition(h, rec.Windows[spec])
			m.Moved = true
		}
		result.Matches = append(result.Matches, m)
		r.logger.Debug("matched window",
			zap.Stringer("window", h),
			zap.String("path", path),
			zap.Int("spec", spec),
			zap.Bool("moved", m.Moved),
		)
	}
	return summary, nil
}

// match returns the lowest pending spec index whose pattern matches path.
func (r *Reconciler) match(rec *model.Arrangement, st *state, path string) (int, bool) {
	for i, spec := range rec.Windows {
		if !st.isPending(i) {
			continue
		}
		ok, err := r.paths.Match(spec.Path, path)
		if err != nil {
			r.logger.Warn("failed to convert 'path' value to pattern for matching",
				zap.Int("spec", i), zap.String("pattern", spec.Path), zap.Error(err))
			continue
		}
		if ok {
			return i, true
		}
	}
	return 0, false
}

func (r *Reconciler) dispose(h platform.Handle, path string, opts Options) {
	switch {
	case opts.CloseForeign:
		r.logger.Debug("closing foreign window", zap.Stringer("window", h), zap.String("path", path))
		if err := r.windows.RequestClose(h); err != nil {
			r.warnOS("failed to close window", h, err)
		}
	case opts.MinimizeForeign:
		r.logger.Debug("minimizing foreign window", zap.Stringer("window", h), zap.String("path", path))
		if err := r.windows.SetDisplayState(h, model.Minimized); err != nil {
			r.warnOS("failed to minimize window", h, err)
		}
	}
}

// reposition brings the window into the normal state, applies the target
// rectangle and then the target maximized and minimized flags, in that
// order. Some windows need a second restore to leave the maximized state.
func (r *Reconciler) reposition(h platform.Handle, spec model.WindowSpec) {
	r.show(h, model.Normal)
	if state, err := r.windows.DisplayState(h); err != nil {
		r.warnOS("failed to read display state", h, err)
	} else if state == model.Maximized {
		r.show(h, model.Normal)
	}

	if err := r.windows.SetRect(h, spec.Rect); err != nil {
		r.warnOS("failed to reposition/resize window", h, err)
	}

	if spec.Maximized {
		r.show(h, model.Maximized)
	}
	if spec.Minimized {
		r.show(h, model.Minimized)
	}
}

func (r *Reconciler) show(h platform.Handle, s model.DisplayState) {
	if err := r.windows.SetDisplayState(h, s); err != nil {
		r.warnOS("failed to change display state to "+s.String(), h, err)
	}
}

func (r *Reconciler) warnOS(msg string, h platform.Handle, err error) {
	// The window may have closed between enumeration and the call.
	if errors.Is(err, platform.ErrWindowGone) {
		r.logger.Debug(msg, zap.Stringer("window", h), zap.Error(err))
		return
	}
	r.logger.Warn(msg, zap.Stringer("window", h), zap.Error(err))
}
