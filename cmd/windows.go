package cmd

import (
	"fmt"
	"strings"

	"github.com/mj1618/winlayout/internal/model"
	"github.com/mj1618/winlayout/internal/output"
	"github.com/spf13/cobra"
)

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List open windows with their executable paths",
	Long: `List the visible windows that save would capture, with the executable path
each one resolves to. Use the paths to write patterns in a saved arrangement.`,
	Args: cobra.NoArgs,
	RunE: runWindows,
}

func init() {
	rootCmd.AddCommand(windowsCmd)
}

func runWindows(cmd *cobra.Command, args []string) error {
	a, err := newApp(logger)
	if err != nil {
		return withOp("error listing windows", err)
	}
	infos, err := a.listWindows()
	if err != nil {
		return withOp("error listing windows", err)
	}
	return output.PrintResult(windowsTable(infos), infos)
}

func windowsTable(infos []model.WindowInfo) string {
	var b strings.Builder
	for i, w := range infos {
		if i > 0 {
			b.WriteByte('\n')
		}
		path := w.Path
		if w.Error != "" && path == "" {
			path = "(" + w.Error + ")"
		}
		fmt.Fprintf(&b, "%-10s %-9s %5d,%-5d %5dx%-5d %s",
			w.Handle, w.State, w.Rect.Left, w.Rect.Top, w.Rect.Width, w.Rect.Height, path)
	}
	return b.String()
}
