package main

import (
	"github.com/spf13/cobra"

	"github.com/jossieT/insurance-risk-analytics/internal/dvctool"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push tracked data to the configured remote",
	RunE:  runPush,
}

func runPush(cmd *cobra.Command, _ []string) error {
	root, err := workspaceRoot()
	if err != nil {
		return err
	}
	d := &dvctool.DVC{}
	return reportResult(cmd.OutOrStdout(), "dvc push", d.Push(root))
}
