package cmd

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFormatError_Concise(t *testing.T) {
	root := errors.New("access is denied")
	err := withOp("error loading window arrangement",
		fmt.Errorf("failed to get module path from window handle 0x1f: %w", root))

	got := formatError(err, false)
	want := "error: error loading window arrangement: access is denied"
	if got != want {
		t.Errorf("formatError() = %q, want %q", got, want)
	}
}

func TestFormatError_Verbose(t *testing.T) {
	root := errors.New("access is denied")
	err := withOp("error loading window arrangement",
		fmt.Errorf("failed to get module path from window handle 0x1f: %w", root))

	got := formatError(err, true)
	for _, want := range []string{
		"error: error loading window arrangement",
		"Caused by:",
		"0: failed to get module path from window handle 0x1f",
		"1: access is denied",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("verbose output missing %q:\n%s", want, got)
		}
	}
	if strings.Count(got, "access is denied") != 1 {
		t.Errorf("each cause should appear once:\n%s", got)
	}
}

func TestFormatError_Unwrapped(t *testing.T) {
	err := errors.New("unsupported format: xml")
	if got := formatError(err, false); got != "error: unsupported format: xml" {
		t.Errorf("got %q", got)
	}
	if got := formatError(err, true); got != "error: unsupported format: xml" {
		t.Errorf("got %q", got)
	}
}

func TestWithOp_Nil(t *testing.T) {
	if withOp("op", nil) != nil {
		t.Error("withOp(nil) should be nil")
	}
}

func TestWithOp_PreservesSentinel(t *testing.T) {
	sentinel := errors.New("not found")
	err := withOp("op", fmt.Errorf("loading: %w", sentinel))
	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should see through opError")
	}
}
