package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jossieT/insurance-risk-analytics/internal/scaffold"
)

var scaffoldFlags struct {
	remoteName string
	remotePath string
	project    string
	data       []string
}

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Create the .dvc workspace scaffold",
	Long: "Creates the .dvc directory tree with config, ignore rules, state\n" +
		"snapshot, plot templates and marker files. Safe to run repeatedly.",
	RunE: runScaffold,
}

func init() {
	f := scaffoldCmd.Flags()
	f.StringVar(&scaffoldFlags.remoteName, "remote", "localstorage", "Remote name")
	f.StringVar(&scaffoldFlags.remotePath, "remote-path", "", "Remote storage path (default <root>/dvc_storage)")
	f.StringVar(&scaffoldFlags.project, "project", "insurance-risk-analytics", "Project name recorded in the state document")
	f.StringSliceVar(&scaffoldFlags.data, "data", []string{"data/MachineLearningRating_v3.txt"}, "Data paths recorded as tracked")
}

func runScaffold(cmd *cobra.Command, _ []string) error {
	root, err := workspaceRoot()
	if err != nil {
		return err
	}
	remotePath := scaffoldFlags.remotePath
	if remotePath == "" {
		remotePath = filepath.Join(root, "dvc_storage")
	}

	w := &scaffold.Writer{
		Root:        root,
		RemoteName:  scaffoldFlags.remoteName,
		RemoteURL:   remotePath,
		Project:     scaffoldFlags.project,
		DataTracked: scaffoldFlags.data,
	}
	if err := w.Create(); err != nil {
		return err
	}
	if err := w.WriteDVCIgnore(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scaffold created at %s\n", scaffold.Dir(root))
	fmt.Fprintf(out, "Remote %q -> %s\n", scaffoldFlags.remoteName, remotePath)
	return nil
}
