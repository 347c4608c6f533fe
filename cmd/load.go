package cmd

import (
	"fmt"
	"strings"

	"github.com/mj1618/winlayout/internal/output"
	"github.com/mj1618/winlayout/internal/reconcile"
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load <name>",
	Short: "Load a saved window arrangement",
	Long: `Launch the applications of a saved arrangement that are not running, then
move each window back into place as it appears. Windows are checked
retry_count times, retry_interval_ms apart (see config.toml).

Windows that belong to no entry of the arrangement are left alone unless
--close-others or --minimize-others is given.

Examples:
  winlayout load work
  winlayout load work --minimize-others`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().Bool("close-others", false, "Close windows that are not in the arrangement")
	loadCmd.Flags().Bool("minimize-others", false, "Minimize windows that are not in the arrangement")
}

func runLoad(cmd *cobra.Command, args []string) error {
	closeOthers, _ := cmd.Flags().GetBool("close-others")
	minimizeOthers, _ := cmd.Flags().GetBool("minimize-others")

	a, err := newApp(logger)
	if err != nil {
		return withOp("error loading window arrangement", err)
	}
	result, err := a.loadArrangement(args[0], foreignPolicy{Close: closeOthers, Minimize: minimizeOthers})
	if err != nil {
		return withOp("error loading window arrangement", err)
	}
	return output.PrintResult(loadSummary(result), result)
}

// loadSummary is the text-mode report of a restore.
func loadSummary(r *reconcile.Result) string {
	var b strings.Builder
	total := len(r.Matches) + len(r.Pending)
	fmt.Fprintf(&b, "Loaded %q: %d of %d windows placed", r.Name, len(r.Matches), total)
	if len(r.Launched) > 0 {
		fmt.Fprintf(&b, ", %d applications launched", len(r.Launched))
	}
	if len(r.Pending) > 0 {
		fmt.Fprintf(&b, "\n%d windows did not appear after %d checks", len(r.Pending), r.Attempts())
	}
	return b.String()
}
