// Package scaffold creates the on-disk .dvc workspace layout: config,
// ignore rules, state snapshot, plot templates and marker files.
package scaffold

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/ini.v1"
)

// DirName is the tracking directory created under the workspace root.
const DirName = ".dvc"

// gitignoreContent lists the internal state files Git must not track.
const gitignoreContent = `# DVC internal files to ignore in Git
tmp/
state-journal*
state-wal*
state*
lock*
/rw
/updater
/updater.lock
`

// dvcignoreContent lists patterns the tracking tool itself skips.
const dvcignoreContent = `# Ignore patterns for DVC
*.pyc
__pycache__/
.ipynb_checkpoints/
.DS_Store
Thumbs.db
*.log
logs/
reports/temp/
models/temp/
`

// markerFiles are the zero-byte lock/journal flags the real tool keeps
// next to its state DB. They carry no locking semantics here.
var markerFiles = []string{"state-journal", "state-wal", "lock"}

// CoreConfig mirrors the [core] section of the config document.
type CoreConfig struct {
	Remote    string `json:"remote"`
	Autostage bool   `json:"autostage"`
}

// RemoteConfig mirrors one [remote "<name>"] section.
type RemoteConfig struct {
	URL string `json:"url"`
}

// ConfigSnapshot is the config subset embedded in the state document.
type ConfigSnapshot struct {
	Core   CoreConfig              `json:"core"`
	Remote map[string]RemoteConfig `json:"remote"`
}

// State is the JSON state document written to .dvc/state.
type State struct {
	Version     string         `json:"version"`
	Config      ConfigSnapshot `json:"config"`
	Timestamp   string         `json:"timestamp"`
	Project     string         `json:"project"`
	DataTracked []string       `json:"data_tracked"`
}

// PlotTemplate describes one named chart template under .dvc/plots.
type PlotTemplate struct {
	Template string `json:"template"`
	X        string `json:"x"`
	Y        string `json:"y"`
	Title    string `json:"title"`
	XLab     string `json:"xlab"`
	YLab     string `json:"ylab"`
}

// ConfusionTemplate is the plot template shipped with every scaffold.
func ConfusionTemplate() PlotTemplate {
	return PlotTemplate{
		Template: "confusion",
		X:        "predicted",
		Y:        "actual",
		Title:    "Confusion Matrix",
		XLab:     "Predicted",
		YLab:     "Actual",
	}
}

// Writer creates the workspace scaffold. All writes are idempotent:
// directories use create-if-absent semantics and files are overwritten
// unconditionally, so Create may be called repeatedly.
type Writer struct {
	Root        string   // workspace root; must already exist
	RemoteName  string   // e.g. "localstorage"
	RemoteURL   string   // remote storage path; created if absent
	Project     string   // project name recorded in the state document
	DataTracked []string // data paths recorded in the state document
	Now         func() time.Time
}

// Dir returns the tracking directory under root.
func Dir(root string) string { return filepath.Join(root, DirName) }

// ConfigPath returns the config document path under root.
func ConfigPath(root string) string { return filepath.Join(root, DirName, "config") }

// StatePath returns the state document path under root.
func StatePath(root string) string { return filepath.Join(root, DirName, "state") }

func (w *Writer) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now().UTC()
}

// Create builds the directory tree and writes every scaffold file.
// The workspace root itself is not created: a missing root is an
// environment error the caller must fix.
func (w *Writer) Create() error {
	dvcDir := Dir(w.Root)
	for _, dir := range []string{dvcDir, filepath.Join(dvcDir, "plots"), filepath.Join(dvcDir, "tmp")} {
		if err := ensureDir(dir); err != nil {
			return err
		}
	}

	// The remote storage path is created, not reported as missing.
	if w.RemoteURL != "" {
		if err := os.MkdirAll(w.RemoteURL, 0755); err != nil {
			return fmt.Errorf("create remote storage: %w", err)
		}
	}

	if err := os.WriteFile(filepath.Join(dvcDir, ".gitignore"), []byte(gitignoreContent), 0644); err != nil {
		return fmt.Errorf("write .gitignore: %w", err)
	}

	if err := w.writeConfig(ConfigPath(w.Root)); err != nil {
		return err
	}
	if err := w.writeState(StatePath(w.Root)); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dvcDir, "plots", "confusion.json"), ConfusionTemplate()); err != nil {
		return err
	}

	for _, name := range markerFiles {
		if err := os.WriteFile(filepath.Join(dvcDir, name), nil, 0644); err != nil {
			return fmt.Errorf("write marker %s: %w", name, err)
		}
	}
	return nil
}

// WriteDVCIgnore writes the .dvcignore pattern file at the workspace root.
func (w *Writer) WriteDVCIgnore() error {
	path := filepath.Join(w.Root, ".dvcignore")
	if err := os.WriteFile(path, []byte(dvcignoreContent), 0644); err != nil {
		return fmt.Errorf("write .dvcignore: %w", err)
	}
	return nil
}

// Snapshot returns the config subset embedded in the state document.
func (w *Writer) Snapshot() ConfigSnapshot {
	return ConfigSnapshot{
		Core: CoreConfig{Remote: w.RemoteName, Autostage: true},
		Remote: map[string]RemoteConfig{
			w.RemoteName: {URL: w.RemoteURL},
		},
	}
}

func (w *Writer) writeConfig(path string) error {
	cfg := ini.Empty()

	core, err := cfg.NewSection("core")
	if err != nil {
		return fmt.Errorf("config core section: %w", err)
	}
	core.Key("remote").SetValue(w.RemoteName)
	core.Key("autostage").SetValue("true")

	remote, err := cfg.NewSection(fmt.Sprintf("remote %q", w.RemoteName))
	if err != nil {
		return fmt.Errorf("config remote section: %w", err)
	}
	remote.Key("url").SetValue(w.RemoteURL)
	remote.Key("ssl_verify").SetValue("false")
	remote.Key("timeout").SetValue("30")
	remote.Key("verify").SetValue("false")

	cache, err := cfg.NewSection("cache")
	if err != nil {
		return fmt.Errorf("config cache section: %w", err)
	}
	cache.Key("type").SetValue("hardlink,symlink")
	cache.Key("dir").SetValue(filepath.Join(DirName, "cache"))

	feature, err := cfg.NewSection("feature")
	if err != nil {
		return fmt.Errorf("config feature section: %w", err)
	}
	feature.Key("machinelearning").SetValue("true")
	feature.Key("analytics").SetValue("true")

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return fmt.Errorf("render config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (w *Writer) writeState(path string) error {
	tracked := w.DataTracked
	if tracked == nil {
		tracked = []string{}
	}
	state := State{
		Version:     "3.0.0",
		Config:      w.Snapshot(),
		Timestamp:   w.now().Format(time.RFC3339),
		Project:     w.Project,
		DataTracked: tracked,
	}
	return writeJSON(path, state)
}

func ensureDir(path string) error {
	if err := os.Mkdir(path, 0755); err != nil && !errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("create %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
