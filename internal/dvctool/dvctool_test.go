package dvctool

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"testing"
)

// fakeRunner records invocations and replays scripted outcomes keyed by
// the first argument after the program name.
type fakeRunner struct {
	calls []string
	fail  map[string]error
	out   map[string]string
}

func (f *fakeRunner) Run(dir, name string, args ...string) ([]byte, error) {
	line := name + " " + strings.Join(args, " ")
	f.calls = append(f.calls, line)
	key := ""
	if len(args) > 0 {
		key = args[0]
	}
	var out []byte
	if f.out != nil {
		out = []byte(f.out[key])
	}
	if f.fail != nil {
		return out, f.fail[key]
	}
	return out, nil
}

func TestDVC_ArgumentShapes(t *testing.T) {
	fr := &fakeRunner{}
	d := &DVC{Runner: fr}

	d.Init("/ws")
	d.AddRemote("/ws", "localstorage", "/ws/dvc_storage")
	d.Track("/ws", "data/raw.txt")
	d.Push("/ws")
	d.Version()

	want := []string{
		"dvc init --no-scm",
		"dvc remote add -d localstorage /ws/dvc_storage",
		"dvc remote default localstorage",
		"dvc add data/raw.txt",
		"dvc push",
		"dvc --version",
	}
	if len(fr.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", fr.calls, want)
	}
	for i := range want {
		if fr.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, fr.calls[i], want[i])
		}
	}
}

func TestGit_ArgumentShapes(t *testing.T) {
	fr := &fakeRunner{}
	g := &Git{Runner: fr}

	g.Init("/ws")
	g.Add("/ws", ".dvc")
	g.Commit("/ws", "Track insurance data with DVC")

	want := []string{
		"git init",
		"git add .dvc",
		"git commit -m Track insurance data with DVC",
	}
	for i := range want {
		if fr.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, fr.calls[i], want[i])
		}
	}
}

func TestResult_FailureCapturesDiagnostics(t *testing.T) {
	fr := &fakeRunner{
		fail: map[string]error{"push": fmt.Errorf("exit status 1")},
		out:  map[string]string{"push": "ERROR: unable to reach remote\n"},
	}
	d := &DVC{Runner: fr}

	res := d.Push("/ws")
	if res.State != Failed {
		t.Fatalf("State = %v, want Failed", res.State)
	}
	if res.Output != "ERROR: unable to reach remote" {
		t.Errorf("Output = %q", res.Output)
	}
	if res.Err == nil {
		t.Error("Err should be set on failure")
	}
}

func TestResult_UnavailableTool(t *testing.T) {
	fr := &fakeRunner{
		fail: map[string]error{"--version": &exec.Error{Name: "dvc", Err: exec.ErrNotFound}},
	}
	d := &DVC{Runner: fr}

	res := d.Version()
	if res.State != Unavailable {
		t.Fatalf("State = %v, want Unavailable", res.State)
	}
	if !errors.Is(res.Err, ErrToolUnavailable) {
		t.Errorf("Err = %v, want ErrToolUnavailable", res.Err)
	}
}

func TestAddRemote_StopsOnFirstFailure(t *testing.T) {
	fr := &fakeRunner{fail: map[string]error{"remote": fmt.Errorf("exit status 1")}}
	d := &DVC{Runner: fr}

	res := d.AddRemote("/ws", "localstorage", "/ws/dvc_storage")
	if res.Success() {
		t.Fatal("expected failure")
	}
	if len(fr.calls) != 1 {
		t.Errorf("calls = %v, want only the add call", fr.calls)
	}
}

func TestExecRunner_MissingBinary(t *testing.T) {
	_, err := ExecRunner{}.Run(t.TempDir(), "riskdvc-no-such-tool-on-path")
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("err = %v, want exec.ErrNotFound", err)
	}
}

func TestInitIfMissing_SkipsExistingRepo(t *testing.T) {
	root := t.TempDir()
	fr := &fakeRunner{}
	g := &Git{Runner: fr}

	// No .git yet: init runs.
	if res := g.InitIfMissing(root); !res.Success() {
		t.Fatalf("InitIfMissing: %+v", res)
	}
	if len(fr.calls) != 1 {
		t.Fatalf("calls = %v, want git init", fr.calls)
	}
}
