package model

import (
	"errors"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ErrInvalidName is returned when an arrangement name cannot be used as a file name.
var ErrInvalidName = errors.New("invalid name: name can only contain alphanumeric characters, underscores (_) and hyphens (-)")

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateName checks that name is usable as a profile key.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Rect is a window rectangle in screen coordinates.
type Rect struct {
	Top    int `yaml:"top"    json:"top"`
	Left   int `yaml:"left"   json:"left"`
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// RectFromBounds converts edge coordinates into a Rect.
func RectFromBounds(left, top, right, bottom int) Rect {
	return Rect{Top: top, Left: left, Width: right - left, Height: bottom - top}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() int { return r.Left + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() int { return r.Top + r.Height }

// WindowSpec describes one desired application window. The position of a spec
// within its Arrangement is its matching priority.
type WindowSpec struct {
	Path            string   `yaml:"path"             json:"path"`
	Args            []string `yaml:"args"             json:"args"`
	ResolveMultiple bool     `yaml:"resolve_multiple" json:"resolve_multiple"`
	ResolutionIndex int      `yaml:"resolution_index" json:"resolution_index"`
	Launch          bool     `yaml:"launch"           json:"launch"`
	Reposition      bool     `yaml:"reposition"       json:"reposition"`
	Rect            Rect     `yaml:"rect"             json:"rect"`
	Minimized       bool     `yaml:"minimized"        json:"minimized"`
	Maximized       bool     `yaml:"maximized"        json:"maximized"`
}

// NewWindowSpec returns a spec for path with the defaults applied to
// hand-written profiles: launch and reposition enabled, no arguments.
func NewWindowSpec(path string) WindowSpec {
	return WindowSpec{
		Path:       path,
		Args:       []string{},
		Launch:     true,
		Reposition: true,
	}
}

// UnmarshalYAML applies the defaults for keys missing from the document.
func (s *WindowSpec) UnmarshalYAML(value *yaml.Node) error {
	type plain WindowSpec
	spec := plain(NewWindowSpec(""))
	if err := value.Decode(&spec); err != nil {
		return err
	}
	if spec.Args == nil {
		spec.Args = []string{}
	}
	if spec.ResolutionIndex < 0 {
		return fmt.Errorf("resolution_index must not be negative (got %d)", spec.ResolutionIndex)
	}
	*s = WindowSpec(spec)
	return nil
}

// Arrangement is a named, ordered set of window specs.
type Arrangement struct {
	Name    string       `yaml:"name"    json:"name"`
	Windows []WindowSpec `yaml:"windows" json:"windows"`
}
