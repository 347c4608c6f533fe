package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/winlayout/internal/config"
	"github.com/mj1618/winlayout/internal/platform"
	"github.com/spf13/cobra"
)

var openDirCmd = &cobra.Command{
	Use:   "open-dir",
	Short: "Open a directory in File Explorer",
	Args:  cobra.NoArgs,
	RunE:  runOpenDir,
}

func init() {
	rootCmd.AddCommand(openDirCmd)
	openDirCmd.Flags().BoolP("root", "r", false, "Open the root directory (default)")
	openDirCmd.Flags().BoolP("data", "d", false, "Open the data directory (where arrangements are saved)")
	openDirCmd.Flags().BoolP("config", "c", false, "Open the config directory")
	openDirCmd.MarkFlagsMutuallyExclusive("root", "data", "config")
}

// selectDir picks the directory named by the open-dir flags.
func selectDir(dirs config.Dirs, data, cfg bool) string {
	switch {
	case data:
		return dirs.Data
	case cfg:
		return dirs.Config
	default:
		return dirs.Root
	}
}

func runOpenDir(cmd *cobra.Command, args []string) error {
	data, _ := cmd.Flags().GetBool("data")
	cfg, _ := cmd.Flags().GetBool("config")

	a, err := newApp(logger)
	if err != nil {
		return withOp("error opening directory", err)
	}
	dir := selectDir(a.dirs, data, cfg)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return withOp("error opening directory", fmt.Errorf("failed to create directory: %w", err))
	}

	var opener platform.DirOpener = platform.ExecOpener{}
	if p, err := a.backend(); err == nil && p.Opener != nil {
		opener = p.Opener
	}
	return withOp("error opening directory", opener.OpenDir(dir))
}
