package cmd

import (
	"fmt"
	"sync"

	"github.com/mj1618/winlayout/internal/capture"
	"github.com/mj1618/winlayout/internal/config"
	"github.com/mj1618/winlayout/internal/model"
	"github.com/mj1618/winlayout/internal/pathpattern"
	"github.com/mj1618/winlayout/internal/platform"
	"github.com/mj1618/winlayout/internal/reconcile"
	"github.com/mj1618/winlayout/internal/store"
	"go.uber.org/zap"
)

// app holds what every command needs: directories, configuration, the
// arrangement store and, once requested, the platform provider.
type app struct {
	dirs   config.Dirs
	cfg    *config.Config
	store  *store.Store
	logger *zap.Logger

	providerOnce sync.Once
	provider     *platform.Provider
	providerErr  error
	newProvider  func() (*platform.Provider, error)

	reconcileOpts []reconcile.Option
}

// newApp locates the data directories and loads the configuration file,
// creating it on first run.
func newApp(logger *zap.Logger) (*app, error) {
	dirs, err := config.DefaultDirs()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(dirs.Config)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return newAppWith(dirs, cfg, platform.NewProvider, logger), nil
}

func newAppWith(dirs config.Dirs, cfg *config.Config, newProvider func() (*platform.Provider, error), logger *zap.Logger) *app {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &app{
		dirs:        dirs,
		cfg:         cfg,
		store:       store.New(dirs.Data),
		logger:      logger,
		newProvider: newProvider,
	}
}

// backend returns the OS provider, creating it on first use so that
// store-only commands work on unsupported systems.
func (a *app) backend() (*platform.Provider, error) {
	a.providerOnce.Do(func() {
		a.provider, a.providerErr = a.newProvider()
	})
	return a.provider, a.providerErr
}

func (a *app) paths(p *platform.Provider) *pathpattern.Resolver {
	return pathpattern.New(pathpattern.WithFoldCase(p.FoldCase))
}

func (a *app) systemDir(p *platform.Provider) string {
	return a.cfg.ResolveSystemDir(p.SystemDir)
}

// saveArrangement captures the open windows and stores them under name.
func (a *app) saveArrangement(name string) (*model.Arrangement, error) {
	if err := model.ValidateName(name); err != nil {
		return nil, err
	}
	p, err := a.backend()
	if err != nil {
		return nil, err
	}

	rec, err := capture.New(p.Windows, a.logger).Capture(name)
	if err != nil {
		return nil, err
	}
	if err := a.store.Save(rec); err != nil {
		return nil, err
	}
	a.logger.Debug("saved arrangement", zap.String("name", name), zap.Int("windows", len(rec.Windows)))
	return rec, nil
}

// foreignPolicy says what happens to windows outside the arrangement.
type foreignPolicy struct {
	Close    bool
	Minimize bool
}

// loadArrangement reads name from the store and restores it.
func (a *app) loadArrangement(name string, policy foreignPolicy) (*reconcile.Result, error) {
	rec, err := a.store.Load(name)
	if err != nil {
		return nil, err
	}
	p, err := a.backend()
	if err != nil {
		return nil, err
	}

	r := reconcile.New(p.Windows, p.Launcher, a.paths(p), a.logger, a.reconcileOpts...)
	return r.Restore(rec, reconcile.Options{
		CloseForeign:    policy.Close,
		MinimizeForeign: policy.Minimize,
		MaxAttempts:     a.cfg.RetryCount,
		Interval:        a.cfg.RetryInterval(),
		SystemDir:       a.systemDir(p),
		SkipUnresolved:  a.cfg.SkipUnresolvedWindows,
	})
}

// listWindows describes every visible window. Per-window failures are
// reported in the entry rather than failing the listing.
func (a *app) listWindows() ([]model.WindowInfo, error) {
	p, err := a.backend()
	if err != nil {
		return nil, err
	}
	handles, err := p.Windows.ListVisibleWindows()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate windows: %w", err)
	}

	infos := make([]model.WindowInfo, 0, len(handles))
	for _, h := range handles {
		info := model.WindowInfo{Handle: h.String()}
		if info.Path, err = p.Windows.ModulePath(h); err != nil {
			info.Error = err.Error()
		}
		if info.State, err = p.Windows.DisplayState(h); err != nil && info.Error == "" {
			info.Error = err.Error()
		}
		b, err := p.Windows.Bounds(h)
		if err != nil && info.Error == "" {
			info.Error = err.Error()
		}
		info.Rect = b.Rect()
		infos = append(infos, info)
	}
	return infos, nil
}
