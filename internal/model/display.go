package model

import (
	"fmt"
	"strings"
)

// DisplayState is the show state of a top-level window.
type DisplayState int

const (
	Normal DisplayState = iota
	Minimized
	Maximized
)

func (s DisplayState) String() string {
	switch s {
	case Normal:
		return "normal"
	case Minimized:
		return "minimized"
	case Maximized:
		return "maximized"
	default:
		return fmt.Sprintf("DisplayState(%d)", int(s))
	}
}

// ParseDisplayState converts a name such as "minimized" into a DisplayState.
func ParseDisplayState(s string) (DisplayState, error) {
	switch strings.ToLower(s) {
	case "normal", "restored":
		return Normal, nil
	case "minimized", "minimised":
		return Minimized, nil
	case "maximized", "maximised":
		return Maximized, nil
	default:
		return Normal, fmt.Errorf("unknown display state: %q (expected normal, minimized, or maximized)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s DisplayState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *DisplayState) UnmarshalText(text []byte) error {
	v, err := ParseDisplayState(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
