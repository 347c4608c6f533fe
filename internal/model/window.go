package model

// WindowInfo describes a live top-level window.
type WindowInfo struct {
	Handle string       `yaml:"handle"          json:"handle"`
	Path   string       `yaml:"path,omitempty"  json:"path,omitempty"`
	State  DisplayState `yaml:"state"           json:"state"`
	Rect   Rect         `yaml:"rect"            json:"rect"`
	Error  string       `yaml:"error,omitempty" json:"error,omitempty"`
}
