package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jossieT/insurance-risk-analytics/internal/params"
	"github.com/jossieT/insurance-risk-analytics/internal/pipeline"
)

var pipelineFlags struct {
	show bool
}

var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Write the dvc.yaml pipeline and parameter documents",
	RunE:  runPipeline,
}

func init() {
	pipelineCmd.Flags().BoolVar(&pipelineFlags.show, "show", false, "Print the pipeline document instead of writing files")
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	p := pipeline.Default()
	out := cmd.OutOrStdout()

	if pipelineFlags.show {
		data, err := p.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprint(out, string(data))
		return nil
	}

	root, err := workspaceRoot()
	if err != nil {
		return err
	}
	if err := p.WriteFile(filepath.Join(root, "dvc.yaml")); err != nil {
		return err
	}
	store := &params.Store{Dir: filepath.Join(root, "params")}
	if err := params.WriteDefaults(store); err != nil {
		return err
	}

	fmt.Fprintf(out, "Wrote dvc.yaml with stages: %v\n", p.Names())
	fmt.Fprintf(out, "Wrote params/%s.yaml and params/%s.yaml\n", params.EDADocName, params.PreprocessDocName)
	return nil
}
