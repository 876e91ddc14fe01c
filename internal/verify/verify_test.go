package verify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jossieT/insurance-risk-analytics/internal/scaffold"
)

func TestRun_EmptyWorkspaceAllFalse(t *testing.T) {
	v := &Verifier{
		Root:   t.TempDir(),
		Remote: "localstorage",
		Probe:  func() bool { return false },
	}
	got := v.Run()
	if diff := cmp.Diff(Report{}, got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_MissingRootDoesNotFail(t *testing.T) {
	v := &Verifier{
		Root:   filepath.Join(t.TempDir(), "never-created"),
		Remote: "localstorage",
		Probe:  func() bool { return false },
	}
	got := v.Run()
	if got.AllTrue() {
		t.Errorf("expected all-false report, got %+v", got)
	}
}

func TestRun_ScaffoldedWorkspace(t *testing.T) {
	root := t.TempDir()
	w := &scaffold.Writer{
		Root:       root,
		RemoteName: "localstorage",
		RemoteURL:  filepath.Join(root, "dvc_storage"),
		Project:    "insurance-risk-analytics",
	}
	if err := w.Create(); err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	if err := os.Mkdir(filepath.Join(root, ".git"), 0755); err != nil {
		t.Fatalf("mk .git: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "MachineLearningRating_v3.txt.dvc"), []byte("outs: []\n"), 0644); err != nil {
		t.Fatalf("write pointer: %v", err)
	}

	v := &Verifier{Root: root, Remote: "localstorage", Probe: func() bool { return true }}
	got := v.Run()

	want := Report{
		Installed:        true,
		Initialized:      true,
		RemoteConfigured: true,
		DataTracked:      true,
		GitIntegrated:    true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
	if !got.AllTrue() {
		t.Error("AllTrue should hold")
	}
}

func TestRun_UnknownRemoteName(t *testing.T) {
	root := t.TempDir()
	w := &scaffold.Writer{
		Root:       root,
		RemoteName: "localstorage",
		RemoteURL:  filepath.Join(root, "dvc_storage"),
	}
	if err := w.Create(); err != nil {
		t.Fatalf("scaffold: %v", err)
	}

	v := &Verifier{Root: root, Remote: "s3mirror", Probe: func() bool { return true }}
	got := v.Run()
	if got.RemoteConfigured {
		t.Error("RemoteConfigured should be false for an unconfigured remote name")
	}
	if !got.Initialized {
		t.Error("Initialized should be true once the config exists")
	}
}

func TestRun_TrackingDirIsNotAPointerFile(t *testing.T) {
	root := t.TempDir()
	// .dvc matches the *.dvc glob but is the tracking directory.
	if err := os.Mkdir(filepath.Join(root, ".dvc"), 0755); err != nil {
		t.Fatalf("mk .dvc: %v", err)
	}
	v := &Verifier{Root: root, Remote: "localstorage", Probe: func() bool { return false }}
	if v.Run().DataTracked {
		t.Error("DataTracked should ignore the .dvc directory itself")
	}
}

func TestRun_IsRepeatable(t *testing.T) {
	root := t.TempDir()
	v := &Verifier{Root: root, Remote: "localstorage", Probe: func() bool { return false }}
	first := v.Run()
	second := v.Run()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated runs differ (-first +second):\n%s", diff)
	}
}
