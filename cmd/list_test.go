package cmd

import (
	"testing"
)

func TestListCommand_TakesNoArgs(t *testing.T) {
	if err := listCmd.Args(listCmd, []string{"extra"}); err == nil {
		t.Error("list should reject positional arguments")
	}
	if err := listCmd.Args(listCmd, nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestListCommand_IsRegistered(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		if c.Name() == "list" {
			return
		}
	}
	t.Error("list command not registered on root")
}
