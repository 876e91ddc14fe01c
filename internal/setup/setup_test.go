package setup

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jossieT/insurance-risk-analytics/internal/dvctool"
)

// fakeRunner answers every invocation successfully unless the rendered
// command line matches a failing prefix.
type fakeRunner struct {
	calls      []string
	failPrefix string
	failErr    error
}

func (f *fakeRunner) Run(dir, name string, args ...string) ([]byte, error) {
	line := name + " " + strings.Join(args, " ")
	f.calls = append(f.calls, line)
	if f.failPrefix != "" && strings.HasPrefix(line, f.failPrefix) {
		err := f.failErr
		if err == nil {
			err = fmt.Errorf("exit status 1")
		}
		return []byte("simulated failure"), err
	}
	return nil, nil
}

func newTestRunner(t *testing.T, fr *fakeRunner, opts Options) *Runner {
	t.Helper()
	r := New(opts)
	r.DVC = &dvctool.DVC{Runner: fr}
	r.Git = &dvctool.Git{Runner: fr}
	r.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	return r
}

func names(results []StepResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Name
	}
	return out
}

func writeData(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("PolicyID|Province\nP001|Gauteng\n"), 0644); err != nil {
		t.Fatalf("write data: %v", err)
	}
}

func TestRun_FullSequence(t *testing.T) {
	root := t.TempDir()
	writeData(t, root, "data/MachineLearningRating_v3.txt")

	fr := &fakeRunner{}
	r := newTestRunner(t, fr, Options{
		Root:     root,
		Project:  "insurance-risk-analytics",
		DataPath: "data/MachineLearningRating_v3.txt",
	})

	results, err := r.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{
		"scaffold", "dvc init", "git init", "remote",
		"pipeline", "params", "stage pointer", "track",
		"git add", "commit", "push", "verify",
	}
	got := names(results)
	if len(got) != len(want) {
		t.Fatalf("steps = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d = %q, want %q", i, got[i], want[i])
		}
		if !results[i].OK {
			t.Errorf("step %q failed: %s", want[i], results[i].Detail)
		}
	}

	// Documents landed in the workspace.
	for _, rel := range []string{
		".dvc/config", ".dvcignore", "dvc.yaml",
		"params/eda_params.yaml", "params/preprocess_params.yaml",
		".dvc/tmp/state.db",
	} {
		if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}
}

func TestRun_HaltsOnFirstToolFailure(t *testing.T) {
	root := t.TempDir()
	fr := &fakeRunner{failPrefix: "dvc init"}
	r := newTestRunner(t, fr, Options{Root: root})

	results, err := r.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := names(results)
	if got[len(got)-1] != "dvc init" {
		t.Errorf("sequence should halt at dvc init, got %v", got)
	}
	last := results[len(results)-1]
	if last.OK {
		t.Error("dvc init step should have failed")
	}
	if !strings.Contains(last.Detail, "simulated failure") {
		t.Errorf("Detail = %q, want captured diagnostics", last.Detail)
	}
}

func TestRun_ContinueOnError(t *testing.T) {
	root := t.TempDir()
	fr := &fakeRunner{failPrefix: "dvc push"}
	r := newTestRunner(t, fr, Options{Root: root, ContinueOnError: true})

	results, err := r.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := names(results)
	if got[len(got)-1] != "verify" {
		t.Errorf("sequence should reach verify, got %v", got)
	}
}

func TestRun_UnavailableToolGuidance(t *testing.T) {
	root := t.TempDir()
	fr := &fakeRunner{
		failPrefix: "dvc init",
		failErr:    &exec.Error{Name: "dvc", Err: exec.ErrNotFound},
	}
	r := newTestRunner(t, fr, Options{Root: root})

	results, err := r.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	last := results[len(results)-1]
	if last.Name != "dvc init" || last.OK {
		t.Fatalf("last step = %+v, want failed dvc init", last)
	}
	if !strings.Contains(last.Detail, "install the tool") {
		t.Errorf("Detail = %q, want install guidance", last.Detail)
	}
}

func TestRun_MissingDataFileIsSkipped(t *testing.T) {
	root := t.TempDir()
	fr := &fakeRunner{}
	r := newTestRunner(t, fr, Options{Root: root, DataPath: "data/absent.txt"})

	results, err := r.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, res := range results {
		if res.Name == "track" {
			if !res.OK || !strings.Contains(res.Detail, "skipped") {
				t.Errorf("track = %+v, want skipped", res)
			}
			return
		}
	}
	t.Error("track step missing")
}

func TestRun_MissingRootIsFilesystemError(t *testing.T) {
	fr := &fakeRunner{}
	r := newTestRunner(t, fr, Options{Root: filepath.Join(t.TempDir(), "no", "such", "dir")})

	if _, err := r.Run(); err == nil {
		t.Fatal("expected filesystem error for missing root")
	}
}
