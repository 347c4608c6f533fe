package cmd

import (
	"fmt"

	"github.com/mj1618/winlayout/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a saved window arrangement",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

type removeResult struct {
	Name    string `yaml:"name"    json:"name"`
	Removed bool   `yaml:"removed" json:"removed"`
}

func runRemove(cmd *cobra.Command, args []string) error {
	a, err := newApp(logger)
	if err != nil {
		return withOp("error removing window arrangement", err)
	}
	name := args[0]
	removed, err := a.store.Remove(name)
	if err != nil {
		return withOp("error removing window arrangement", err)
	}
	text := fmt.Sprintf("Removed %q", name)
	if !removed {
		logger.Info("file does not exist", zap.String("name", name))
		text = ""
	}
	return output.PrintResult(text, removeResult{Name: name, Removed: removed})
}
