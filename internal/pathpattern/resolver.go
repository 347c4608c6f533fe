// Package pathpattern matches executable paths against glob patterns in both
// directions: expanding a pattern into files to launch, and testing a running
// process's module path against a pattern.
//
// Patterns use the doublestar dialect (*, ?, [class], {alt,ernatives} and **).
// Backslashes are always path separators, so Windows paths can be written
// with either separator.
package pathpattern

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrBadPattern is returned for malformed patterns.
var ErrBadPattern = errors.New("invalid path pattern")

// GlobFunc lists the files matching an OS-style pattern.
type GlobFunc func(pattern string) ([]string, error)

// Resolver expands and matches path patterns.
type Resolver struct {
	// FoldCase makes Match and Same ignore letter case, as on Windows.
	FoldCase bool

	glob GlobFunc
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFoldCase sets case-insensitive matching.
func WithFoldCase(fold bool) Option {
	return func(r *Resolver) { r.FoldCase = fold }
}

// WithGlob replaces the filesystem glob used by Expand.
func WithGlob(fn GlobFunc) Option {
	return func(r *Resolver) { r.glob = fn }
}

// New returns a Resolver that expands patterns against the local filesystem.
func New(opts ...Option) *Resolver {
	r := &Resolver{glob: filesystemGlob}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func filesystemGlob(pattern string) ([]string, error) {
	return doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
}

// normalize converts separators to '/' and cleans the result. A leading
// "//" (a UNC share) survives the clean.
func normalize(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "//") {
		return "/" + path.Clean(p[1:])
	}
	return path.Clean(p)
}

func validate(pattern string) (string, error) {
	p := strings.ReplaceAll(pattern, `\`, "/")
	if p == "" || !doublestar.ValidatePattern(p) {
		return "", fmt.Errorf("%w: %q", ErrBadPattern, pattern)
	}
	return p, nil
}

// Expand returns the files matching pattern, sorted lexically so that an
// index into the result is stable between runs.
func (r *Resolver) Expand(pattern string) ([]string, error) {
	p, err := validate(pattern)
	if err != nil {
		return nil, err
	}
	matches, err := r.glob(p)
	if err != nil {
		if errors.Is(err, doublestar.ErrBadPattern) {
			return nil, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
		}
		return nil, fmt.Errorf("expanding %q: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// Match reports whether the concrete path p matches pattern.
func (r *Resolver) Match(pattern, p string) (bool, error) {
	pat, err := validate(pattern)
	if err != nil {
		return false, err
	}
	// The pattern is cleaned exactly like the path so "." segments and UNC
	// prefixes compare equal on both sides.
	pat = normalize(pat)
	name := normalize(p)
	if r.FoldCase {
		// Backslashes are separators and never escapes, so lowercasing the
		// pattern (bracket classes included) cannot change its meaning.
		pat = strings.ToLower(pat)
		name = strings.ToLower(name)
	}
	ok, err := doublestar.Match(pat, name)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
	}
	return ok, nil
}

// Same reports whether a and b name the same path.
func (r *Resolver) Same(a, b string) bool {
	a, b = normalize(a), normalize(b)
	if r.FoldCase {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// Under reports whether p is dir or lies below it. The comparison ignores
// case and separator style; an empty dir matches nothing.
func (r *Resolver) Under(p, dir string) bool {
	dir = strings.TrimSuffix(strings.ToLower(normalize(dir)), "/")
	if dir == "" || dir == "." {
		return false
	}
	p = strings.ToLower(normalize(p))
	return p == dir || strings.HasPrefix(p, dir+"/")
}
