package reconcile

import (
	"github.com/mj1618/winlayout/internal/model"
	"go.uber.org/zap"
)

// candidates picks the expanded paths to launch for spec: all of them when
// ResolveMultiple is set, otherwise the one at ResolutionIndex, clamped to
// the last path.
func candidates(spec model.WindowSpec, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	if spec.ResolveMultiple {
		return paths
	}
	i := spec.ResolutionIndex
	if i < 0 {
		i = 0
	}
	if i > len(paths)-1 {
		i = len(paths) - 1
	}
	return []string{paths[i]}
}

// launchMissing starts the applications of every launchable spec whose
// executable is not among running. It never waits for windows to appear.
func (r *Reconciler) launchMissing(rec *model.Arrangement, running []string, result *Result) {
	for i, spec := range rec.Windows {
		if !spec.Launch {
			continue
		}

		paths, err := r.paths.Expand(spec.Path)
		if err != nil {
			r.logger.Warn("failed to convert 'path' value to pattern for launching",
				zap.Int("spec", i), zap.String("pattern", spec.Path), zap.Error(err))
			continue
		}
		if len(paths) == 0 {
			r.logger.Warn("no files found matching 'path' value - skipping entry",
				zap.Int("spec", i), zap.String("pattern", spec.Path))
			continue
		}

		for _, path := range candidates(spec, paths) {
			if r.isRunning(path, running) {
				r.logger.Debug("application already running", zap.Int("spec", i), zap.String("path", path))
				continue
			}
			if err := r.launcher.Launch(path, spec.Args); err != nil {
				r.logger.Warn("failed to launch application", zap.Int("spec", i), zap.String("path", path), zap.Error(err))
				result.LaunchFailures = append(result.LaunchFailures, path)
				continue
			}
			r.logger.Debug("launched application", zap.Int("spec", i), zap.String("path", path), zap.Strings("args", spec.Args))
			result.Launched = append(result.Launched, path)
		}
	}
}

func (r *Reconciler) isRunning(path string, running []string) bool {
	for _, p := range running {
		if r.paths.Same(p, path) {
			return true
		}
	}
	return false
}
