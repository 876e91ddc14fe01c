// Package artifacts collects submission evidence of the tracking setup:
// the scaffold files, pointer files, pipeline and parameter documents,
// copied into a single artifacts directory with a README.
package artifacts

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// DefaultDir is the destination, relative to the workspace root.
const DefaultDir = "artifacts/dvc_setup"

// optionalFiles are copied when present and skipped silently otherwise,
// matching the best-effort behavior of the setup sequence.
var optionalFiles = []string{
	".dvcignore",
	"data/MachineLearningRating_v3.txt.dvc",
	"data/raw/MachineLearningRating_v3.txt.dvc",
	"dvc.yaml",
	"params/eda_params.yaml",
	"params/preprocess_params.yaml",
}

const readmeContent = `# DVC Setup Artifacts

This directory contains evidence of DVC setup for the Insurance Risk
Analytics project: the .dvc/ scaffold (config, ignore rules, state,
plot templates), pointer files for tracked data, the dvc.yaml pipeline
definition and the stage parameter documents.

To verify the setup against a live installation:

    dvc config --list
    dvc status
    riskdvc status
`

// Copier copies the evidence files. Copies run concurrently; the first
// I/O error aborts the run.
type Copier struct {
	Root string // workspace root
	Dir  string // destination; empty means DefaultDir under Root
}

func (c *Copier) dest() string {
	if c.Dir != "" {
		return c.Dir
	}
	return filepath.Join(c.Root, DefaultDir)
}

// Run copies everything and writes the README. Returns the workspace-
// relative paths that were copied.
func (c *Copier) Run() ([]string, error) {
	var rels []string

	// The whole .dvc tree, when it exists.
	dvcDir := filepath.Join(c.Root, ".dvc")
	if _, err := os.Stat(dvcDir); err == nil {
		err := filepath.WalkDir(dvcDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			rel, err := filepath.Rel(c.Root, path)
			if err != nil {
				return err
			}
			rels = append(rels, rel)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk scaffold: %w", err)
		}
	}

	for _, rel := range optionalFiles {
		if _, err := os.Stat(filepath.Join(c.Root, rel)); err == nil {
			rels = append(rels, rel)
		}
	}

	var g errgroup.Group
	g.SetLimit(4)
	for _, rel := range rels {
		rel := rel
		g.Go(func() error {
			return copyFile(filepath.Join(c.Root, rel), filepath.Join(c.dest(), rel))
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(c.dest(), 0755); err != nil {
		return nil, fmt.Errorf("create artifacts dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(c.dest(), "README.md"), []byte(readmeContent), 0644); err != nil {
		return nil, fmt.Errorf("write artifacts README: %w", err)
	}
	return rels, nil
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(dst), err)
	}
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}
