package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/winlayout/internal/logging"
	"github.com/mj1618/winlayout/internal/output"
	"github.com/mj1618/winlayout/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "winlayout",
	Short: "Save and load window arrangements",
	Long: `Save the position, size and display state of every open window under a name,
and restore it later: missing applications are launched and their windows are
moved back into place as they appear.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var (
	verbose bool
	logger  = zap.NewNop()
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err, verbose))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().String("format", "text", "Output format: text, yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

		l, err := logging.New(logging.ForVerbosity(verbose))
		if err != nil {
			return fmt.Errorf("failed to initialise logging: %w", err)
		}
		logger = l
		return nil
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	}
}
