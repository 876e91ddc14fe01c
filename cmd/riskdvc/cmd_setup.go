package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jossieT/insurance-risk-analytics/internal/format"
	"github.com/jossieT/insurance-risk-analytics/internal/setup"
)

var setupFlags struct {
	remoteName string
	remotePath string
	project    string
	data       string
	message    string
	keepGoing  bool
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Run the full tracking bootstrap end to end",
	Long: "Scaffolds the workspace, initializes dvc and git, registers the\n" +
		"remote, writes the pipeline and parameter documents, tracks the raw\n" +
		"data file, commits, pushes and verifies the result.",
	RunE: runSetup,
}

func init() {
	f := setupCmd.Flags()
	f.StringVar(&setupFlags.remoteName, "remote", "localstorage", "Remote name")
	f.StringVar(&setupFlags.remotePath, "remote-path", "", "Remote storage path (default <root>/dvc_storage)")
	f.StringVar(&setupFlags.project, "project", "insurance-risk-analytics", "Project name")
	f.StringVar(&setupFlags.data, "data", "data/MachineLearningRating_v3.txt", "Raw data file to track, relative to the root")
	f.StringVarP(&setupFlags.message, "message", "m", "Track insurance data with DVC", "Commit message")
	f.BoolVar(&setupFlags.keepGoing, "keep-going", false, "Continue past failed steps instead of halting")
}

func runSetup(cmd *cobra.Command, _ []string) error {
	root, err := workspaceRoot()
	if err != nil {
		return err
	}

	r := setup.New(setup.Options{
		Root:            root,
		RemoteName:      setupFlags.remoteName,
		RemotePath:      setupFlags.remotePath,
		Project:         setupFlags.project,
		DataPath:        setupFlags.data,
		CommitMessage:   setupFlags.message,
		ContinueOnError: setupFlags.keepGoing,
	})

	results, err := r.Run()
	if err != nil {
		return err
	}

	tb := format.NewTable(format.ASCII)
	tb.Header("Step", "OK", "Detail")
	failed := 0
	for _, res := range results {
		if !res.OK {
			failed++
		}
		tb.Row(res.Name, format.BoolMark(res.OK), format.Truncate(res.Detail, 60))
	}
	fmt.Fprintln(cmd.OutOrStdout(), tb.String())

	if failed > 0 {
		return fmt.Errorf("setup: %d step(s) failed", failed)
	}
	return nil
}
