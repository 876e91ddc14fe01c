package main

import (
	"github.com/spf13/cobra"

	"github.com/jossieT/insurance-risk-analytics/internal/dvctool"
)

var commitFlags struct {
	message string
}

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Stage the scaffold and commit it to git",
	RunE:  runCommit,
}

func init() {
	f := commitCmd.Flags()
	f.StringVarP(&commitFlags.message, "message", "m", "Update data via DVC", "Commit message")
}

func runCommit(cmd *cobra.Command, _ []string) error {
	root, err := workspaceRoot()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	g := &dvctool.Git{}
	if err := reportResult(out, "git add .dvc", g.Add(root, ".dvc")); err != nil {
		return err
	}
	return reportResult(out, "git commit", g.Commit(root, commitFlags.message))
}
