package platform

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ExecOpener opens directories with the desktop's command-line opener
// ("open" on macOS, "xdg-open" elsewhere).
type ExecOpener struct{}

func (ExecOpener) OpenDir(path string) error {
	name := "xdg-open"
	if runtime.GOOS == "darwin" {
		name = "open"
	}
	out, err := exec.Command(name, path).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %s (%w)", name, strings.TrimSpace(string(out)), err)
	}
	return nil
}
