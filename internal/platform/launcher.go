package platform

import (
	"fmt"
	"os/exec"
)

// ExecLauncher starts applications with os/exec. The child gets the null
// device for stdin, stdout and stderr and is released immediately.
type ExecLauncher struct {
	// Configure, if set, adjusts the command before it starts (e.g. to set
	// OS-specific process attributes).
	Configure func(*exec.Cmd)
}

// NewExecLauncher returns a launcher with no OS-specific configuration.
func NewExecLauncher() *ExecLauncher {
	return &ExecLauncher{}
}

func (l *ExecLauncher) Launch(path string, args []string) error {
	c := exec.Command(path, args...)
	c.Stdin = nil
	c.Stdout = nil
	c.Stderr = nil
	if l.Configure != nil {
		l.Configure(c)
	}
	if err := c.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", path, err)
	}
	if err := c.Process.Release(); err != nil {
		return fmt.Errorf("failed to release %s (pid %d): %w", path, c.Process.Pid, err)
	}
	return nil
}
