// Package setup runs the end-to-end tracking bootstrap: scaffold the
// workspace, initialize the external tools, register the remote, write
// the pipeline and parameter documents, track the raw data and verify.
package setup

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jossieT/insurance-risk-analytics/internal/dvctool"
	"github.com/jossieT/insurance-risk-analytics/internal/logging"
	"github.com/jossieT/insurance-risk-analytics/internal/params"
	"github.com/jossieT/insurance-risk-analytics/internal/pipeline"
	"github.com/jossieT/insurance-risk-analytics/internal/scaffold"
	"github.com/jossieT/insurance-risk-analytics/internal/statedb"
	"github.com/jossieT/insurance-risk-analytics/internal/verify"
)

// Options configures one bootstrap run. All paths are explicit; nothing
// is guessed from the working directory.
type Options struct {
	Root          string
	RemoteName    string
	RemotePath    string // remote storage directory
	Project       string
	DataPath      string // raw data file to track, relative to Root; optional
	CommitMessage string
	// ContinueOnError keeps running after a failed step instead of
	// halting, the best-effort mode of the reference sequence.
	ContinueOnError bool
}

// StepResult records one step's outcome.
type StepResult struct {
	Name   string
	OK     bool
	Detail string
}

// Runner executes the sequence. DVC and Git default to exec-backed
// façades; tests inject fakes.
type Runner struct {
	Opts Options
	DVC  *dvctool.DVC
	Git  *dvctool.Git
	Log  *slog.Logger
}

// New constructs a Runner with default façades.
func New(opts Options) *Runner {
	if opts.RemoteName == "" {
		opts.RemoteName = "localstorage"
	}
	if opts.RemotePath == "" {
		opts.RemotePath = filepath.Join(opts.Root, "dvc_storage")
	}
	if opts.CommitMessage == "" {
		opts.CommitMessage = "Track insurance data with DVC"
	}
	return &Runner{
		Opts: opts,
		DVC:  &dvctool.DVC{},
		Git:  &dvctool.Git{},
		Log:  logging.New("setup"),
	}
}

// Run executes every step in order. Tool failures are recorded as step
// results; by default the sequence halts on the first failure.
// Filesystem errors writing the scaffold or documents are returned
// directly: they indicate an environment the caller must fix.
func (r *Runner) Run() ([]StepResult, error) {
	var results []StepResult

	record := func(name string, ok bool, detail string) bool {
		results = append(results, StepResult{Name: name, OK: ok, Detail: detail})
		if ok {
			r.Log.Info("step done", "step", name)
			return true
		}
		r.Log.Error("step failed", "step", name, "detail", detail)
		return r.Opts.ContinueOnError
	}
	tool := func(name string, res dvctool.Result) bool {
		detail := res.Output
		if res.State == dvctool.Unavailable {
			detail = fmt.Sprintf("%v (install the tool and re-run)", res.Err)
		}
		return record(name, res.Success(), detail)
	}

	w := &scaffold.Writer{
		Root:       r.Opts.Root,
		RemoteName: r.Opts.RemoteName,
		RemoteURL:  r.Opts.RemotePath,
		Project:    r.Opts.Project,
	}
	if r.Opts.DataPath != "" {
		w.DataTracked = []string{r.Opts.DataPath}
	}
	if err := w.Create(); err != nil {
		return results, err
	}
	if err := w.WriteDVCIgnore(); err != nil {
		return results, err
	}
	if !record("scaffold", true, "") {
		return results, nil
	}

	if !tool("dvc init", r.DVC.Init(r.Opts.Root)) {
		return results, nil
	}
	if !tool("git init", r.Git.InitIfMissing(r.Opts.Root)) {
		return results, nil
	}
	if !tool("remote", r.DVC.AddRemote(r.Opts.Root, r.Opts.RemoteName, r.Opts.RemotePath)) {
		return results, nil
	}

	if err := pipeline.Default().WriteFile(filepath.Join(r.Opts.Root, "dvc.yaml")); err != nil {
		return results, err
	}
	if !record("pipeline", true, "dvc.yaml") {
		return results, nil
	}

	store := &params.Store{Dir: filepath.Join(r.Opts.Root, "params")}
	if err := params.WriteDefaults(store); err != nil {
		return results, err
	}
	if !record("params", true, "params/") {
		return results, nil
	}

	if cont, err := r.trackStep(record, tool); err != nil {
		return results, err
	} else if !cont {
		return results, nil
	}

	if !tool("git add", r.Git.Add(r.Opts.Root, ".dvc")) {
		return results, nil
	}
	if !tool("commit", r.Git.Commit(r.Opts.Root, r.Opts.CommitMessage)) {
		return results, nil
	}
	if !tool("push", r.DVC.Push(r.Opts.Root)) {
		return results, nil
	}

	report := (&verify.Verifier{
		Root:   r.Opts.Root,
		Remote: r.Opts.RemoteName,
		Probe:  func() bool { return r.DVC.Version().Success() },
	}).Run()
	record("verify", true, fmt.Sprintf("%+v", report))

	return results, nil
}

// trackStep adds the raw data file to tracking. A missing optional data
// file is skipped, not failed.
func (r *Runner) trackStep(record func(string, bool, string) bool, tool func(string, dvctool.Result) bool) (bool, error) {
	if r.Opts.DataPath == "" {
		return record("track", true, "skipped: no data path"), nil
	}
	if _, err := os.Stat(filepath.Join(r.Opts.Root, r.Opts.DataPath)); err != nil {
		return record("track", true, "skipped: data file missing"), nil
	}

	res := r.DVC.Track(r.Opts.Root, r.Opts.DataPath)
	if !res.Success() {
		return tool("track", res), nil
	}

	db, err := statedb.Open(statedb.DefaultPath(r.Opts.Root))
	if err != nil {
		return false, err
	}
	defer db.Close()
	if err := db.Record(r.Opts.DataPath); err != nil {
		return false, err
	}

	// Stage the pointer file so the commit step picks it up.
	if !tool("stage pointer", r.Git.Add(r.Opts.Root, r.Opts.DataPath+".dvc")) {
		return false, nil
	}
	return record("track", true, r.Opts.DataPath), nil
}
