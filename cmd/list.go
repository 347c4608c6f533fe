package cmd

import (
	"fmt"
	"strings"

	"github.com/mj1618/winlayout/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved arrangements",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// listEntry is the structured output of list.
type listEntry struct {
	Names    []string `yaml:"names"              json:"names"`
	Problems []string `yaml:"problems,omitempty" json:"problems,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp(logger)
	if err != nil {
		return withOp("error listing saved arrangements", err)
	}
	listing, err := a.store.List()
	if err != nil {
		return withOp("error listing saved arrangements", err)
	}

	entry := listEntry{Names: listing.Names}
	for _, p := range listing.Problems {
		logger.Warn("skipping arrangement file", zap.String("file", p.File), zap.Error(p.Err))
		entry.Problems = append(entry.Problems, p.Error())
	}

	if err := output.PrintResult(strings.Join(listing.Names, "\n"), entry); err != nil {
		return err
	}
	if len(listing.Problems) > 0 && output.OutputFormat == output.FormatText {
		fmt.Fprintln(cmd.ErrOrStderr(), "info: some items may be missing from this list - for more details, run this command in verbose mode")
	}
	return nil
}
