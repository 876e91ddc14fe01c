package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jossieT/insurance-risk-analytics/internal/artifacts"
)

var artifactsFlags struct {
	dir string
}

var artifactsCmd = &cobra.Command{
	Use:   "artifacts",
	Short: "Copy setup evidence into the artifacts directory",
	RunE:  runArtifacts,
}

func init() {
	artifactsCmd.Flags().StringVar(&artifactsFlags.dir, "dir", "", "Destination directory (default <root>/artifacts/dvc_setup)")
}

func runArtifacts(cmd *cobra.Command, _ []string) error {
	root, err := workspaceRoot()
	if err != nil {
		return err
	}
	c := &artifacts.Copier{Root: root, Dir: artifactsFlags.dir}
	rels, err := c.Run()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, rel := range rels {
		fmt.Fprintf(out, "  %s\n", rel)
	}
	fmt.Fprintf(out, "Copied %d file(s)\n", len(rels))
	return nil
}
