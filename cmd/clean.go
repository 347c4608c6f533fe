package cmd

import (
	"github.com/mj1618/winlayout/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean winlayout data (default - saved arrangements)",
	Long: `Delete every saved arrangement. With --all the whole root directory is
deleted, including config.toml.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().BoolP("all", "a", false, "Delete the root directory (all data, config, etc.)")
}

func runClean(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")

	a, err := newApp(logger)
	if err != nil {
		return withOp("error cleaning data", err)
	}

	dir := a.dirs.Data
	if all {
		dir = a.dirs.Root
	}
	removed, err := store.RemoveDir(dir)
	if err != nil {
		return withOp("error cleaning data", err)
	}
	if !removed {
		logger.Info("directory does not exist", zap.String("dir", dir))
	}
	return nil
}
