package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jossieT/insurance-risk-analytics/internal/format"
	"github.com/jossieT/insurance-risk-analytics/internal/statedb"
	"github.com/jossieT/insurance-risk-analytics/internal/verify"
)

var statusFlags struct {
	remoteName string
	markdown   bool
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Verify the tracking setup and show its state",
	RunE:  runStatus,
}

func init() {
	f := statusCmd.Flags()
	f.StringVar(&statusFlags.remoteName, "remote", "localstorage", "Remote name to check for")
	f.BoolVar(&statusFlags.markdown, "markdown", false, "Render the report as a Markdown table")
}

func runStatus(cmd *cobra.Command, _ []string) error {
	root, err := workspaceRoot()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	v := &verify.Verifier{Root: root, Remote: statusFlags.remoteName}
	report := v.Run()

	mode := format.ASCII
	if statusFlags.markdown {
		mode = format.Markdown
	}
	tb := format.NewTable(mode)
	tb.Header("Check", "OK")
	tb.Row("dvc_installed", format.BoolMark(report.Installed))
	tb.Row("dvc_initialized", format.BoolMark(report.Initialized))
	tb.Row("remote_configured", format.BoolMark(report.RemoteConfigured))
	tb.Row("data_tracked", format.BoolMark(report.DataTracked))
	tb.Row("git_integrated", format.BoolMark(report.GitIntegrated))
	fmt.Fprintln(out, tb.String())

	// The registry is optional; status must not fail without it.
	if _, err := os.Stat(statedb.DefaultPath(root)); err == nil {
		db, err := statedb.Open(statedb.DefaultPath(root))
		if err == nil {
			defer db.Close()
			if files, err := db.List(); err == nil && len(files) > 0 {
				fmt.Fprintf(out, "Registered data files (%d):\n", len(files))
				for _, f := range files {
					fmt.Fprintf(out, "  %s  (%s)\n", f.Path, f.AddedAt)
				}
			}
		}
	}

	if !report.AllTrue() {
		fmt.Fprintln(out, "Run 'riskdvc setup' to complete the missing pieces.")
	}
	return nil
}
