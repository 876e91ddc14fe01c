// riskdvc bootstraps and inspects data versioning for the insurance
// risk analytics project: workspace scaffold, pipeline and parameter
// documents, external tool wiring and status verification.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jossieT/insurance-risk-analytics/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	root      string
	logLevel  string
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "riskdvc",
	Short: "Data-versioning setup for insurance risk analytics",
	Long: "riskdvc scaffolds a DVC tracking workspace for the insurance risk\n" +
		"analytics dataset, writes the pipeline and parameter documents and\n" +
		"drives the external dvc/git tools to track, commit and push data.",
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return logging.Setup(rootFlags.logLevel, rootFlags.logFormat)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.root, "root", ".", "Workspace root directory")
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format (text|json)")

	rootCmd.AddCommand(scaffoldCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(pipelineCmd)
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(commitCmd)
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(loadDataCmd)
	rootCmd.AddCommand(artifactsCmd)
	rootCmd.AddCommand(stepsCmd)
	rootCmd.Version = version
}

// workspaceRoot resolves the --root flag to an absolute path.
func workspaceRoot() (string, error) {
	abs, err := filepath.Abs(rootFlags.root)
	if err != nil {
		return "", fmt.Errorf("resolve workspace root: %w", err)
	}
	return abs, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
