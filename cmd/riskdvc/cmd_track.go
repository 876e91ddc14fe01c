package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jossieT/insurance-risk-analytics/internal/dvctool"
	"github.com/jossieT/insurance-risk-analytics/internal/statedb"
)

var trackCmd = &cobra.Command{
	Use:   "track <path>",
	Short: "Add a data file to tracking",
	Long: "Runs dvc add on the given file (relative to the workspace root),\n" +
		"records it in the tracked-file registry and stages the pointer file.",
	Args: cobra.ExactArgs(1),
	RunE: runTrack,
}

func runTrack(cmd *cobra.Command, args []string) error {
	root, err := workspaceRoot()
	if err != nil {
		return err
	}
	rel := args[0]
	out := cmd.OutOrStdout()

	d := &dvctool.DVC{}
	if err := reportResult(out, "dvc add "+rel, d.Track(root, rel)); err != nil {
		return err
	}

	db, err := statedb.Open(statedb.DefaultPath(root))
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.Record(rel); err != nil {
		return err
	}

	g := &dvctool.Git{}
	if err := reportResult(out, "git add "+rel+".dvc", g.Add(root, rel+".dvc")); err != nil {
		return err
	}

	fmt.Fprintf(out, "Tracking %s\n", rel)
	return nil
}
