package cmd

import (
	"fmt"

	"github.com/mj1618/winlayout/internal/output"
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current arrangement of open windows",
	Long: `Capture the position, size and minimized/maximized state of every visible
window and store it under <name>, replacing any arrangement of that name.

Names may contain letters, digits, underscores and hyphens.`,
	Args: cobra.ExactArgs(1),
	RunE: runSave,
}

func init() {
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	a, err := newApp(logger)
	if err != nil {
		return withOp("error saving window arrangement", err)
	}
	rec, err := a.saveArrangement(args[0])
	if err != nil {
		return withOp("error saving window arrangement", err)
	}
	return output.PrintResult(fmt.Sprintf("Saved %d windows as %q", len(rec.Windows), rec.Name), rec)
}
