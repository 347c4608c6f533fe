package cmd

import (
	"errors"
	"fmt"
	"strings"
)

// opError tags an error with the command-level operation that failed.
type opError struct {
	op  string
	err error
}

func (e *opError) Error() string { return e.op + ": " + e.err.Error() }

func (e *opError) Unwrap() error { return e.err }

func withOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return &opError{op: op, err: err}
}

// causes returns err followed by each error it wraps.
func causes(err error) []error {
	var chain []error
	for e := err; e != nil; e = errors.Unwrap(e) {
		chain = append(chain, e)
	}
	return chain
}

// formatError renders err as "error: <operation>: <root cause>", or with
// every layer of context listed when verbose is set.
func formatError(err error, verbose bool) string {
	chain := causes(err)
	if len(chain) == 0 {
		return ""
	}
	if verbose {
		return formatChain(chain)
	}

	root := chain[len(chain)-1]
	var op *opError
	if errors.As(err, &op) && root != op {
		return "error: " + op.op + ": " + root.Error()
	}
	return "error: " + err.Error()
}

func formatChain(chain []error) string {
	var b strings.Builder
	b.WriteString("error: " + own(chain, 0))
	if len(chain) > 1 {
		b.WriteString("\n\nCaused by:")
		for i := 1; i < len(chain); i++ {
			fmt.Fprintf(&b, "\n    %d: %s", i-1, own(chain, i))
		}
	}
	return b.String()
}

// own strips the wrapped error's text from the message of chain[i].
func own(chain []error, i int) string {
	msg := chain[i].Error()
	if i+1 < len(chain) {
		msg = strings.TrimSuffix(msg, ": "+chain[i+1].Error())
	}
	return msg
}
