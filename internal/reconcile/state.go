package reconcile

import (
	"sort"

	"github.com/mj1618/winlayout/internal/platform"
)

// state is owned by a single Restore call.
type state struct {
	// pending holds the indices of specs no window has matched yet.
	pending map[int]struct{}
	// excluded holds foreign windows that have already been disposed of.
	excluded map[platform.Handle]struct{}
	// assigned maps matched windows to their spec index.
	assigned map[platform.Handle]int
}

func newState(specs int) *state {
	s := &state{
		pending:  make(map[int]struct{}, specs),
		excluded: make(map[platform.Handle]struct{}),
		assigned: make(map[platform.Handle]int),
	}
	for i := 0; i < specs; i++ {
		s.pending[i] = struct{}{}
	}
	return s
}

func (s *state) isPending(i int) bool {
	_, ok := s.pending[i]
	return ok
}

// classified reports whether h was matched or excluded earlier in this call.
func (s *state) classified(h platform.Handle) bool {
	if _, ok := s.excluded[h]; ok {
		return true
	}
	_, ok := s.assigned[h]
	return ok
}

func (s *state) exclude(h platform.Handle) {
	s.excluded[h] = struct{}{}
}

func (s *state) assign(h platform.Handle, spec int) {
	delete(s.pending, spec)
	s.assigned[h] = spec
}

func (s *state) pendingIndices() []int {
	out := make([]int, 0, len(s.pending))
	for i := range s.pending {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Match records a spec resolved by a live window.
type Match struct {
	Spec   int             `yaml:"spec"   json:"spec"`
	Window platform.Handle `yaml:"-"      json:"-"`
	Handle string          `yaml:"window" json:"window"`
	Path   string          `yaml:"path"   json:"path"`
	Moved  bool            `yaml:"moved"  json:"moved"`
}

// Attempt summarises one polling pass.
type Attempt struct {
	Number   int `yaml:"attempt"  json:"attempt"`
	Windows  int `yaml:"windows"  json:"windows"`
	Matched  int `yaml:"matched"  json:"matched"`
	Excluded int `yaml:"excluded" json:"excluded"`
	Pending  int `yaml:"pending"  json:"pending"`
}

// Result describes the outcome of a restore. A result with pending specs is
// still a successful restore: those applications never showed a window.
type Result struct {
	Name           string    `yaml:"name"                      json:"name"`
	Launched       []string  `yaml:"launched"                  json:"launched"`
	LaunchFailures []string  `yaml:"launch_failures,omitempty" json:"launch_failures,omitempty"`
	Matches        []Match   `yaml:"matches"                   json:"matches"`
	Pending        []int     `yaml:"pending"                   json:"pending"`
	Excluded       int       `yaml:"excluded"                  json:"excluded"`
	History        []Attempt `yaml:"attempts"                  json:"attempts"`
}

// Attempts returns the number of polling passes performed.
func (r *Result) Attempts() int { return len(r.History) }

// Complete reports whether every spec was matched.
func (r *Result) Complete() bool { return len(r.Pending) == 0 }
