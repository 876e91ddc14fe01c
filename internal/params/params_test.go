package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRoundTrip_NestedMapping(t *testing.T) {
	s := &Store{Dir: t.TempDir()}

	doc := map[string]any{
		"split": map[string]any{
			"test_size":    0.2,
			"random_state": 42,
		},
		"encoding": map[string]any{
			"method":         "onehot",
			"max_categories": 20,
		},
		"flags":  []any{true, false, true},
		"labels": []any{"a", "b", "c"},
	}

	if err := s.WriteDocument("preprocess_params", doc); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}
	got, err := s.ReadDocument("preprocess_params")
	if err != nil {
		t.Fatalf("ReadDocument: %v", err)
	}
	if diff := cmp.Diff(doc, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTrip_NumericTypes(t *testing.T) {
	s := &Store{Dir: t.TempDir()}

	doc := map[string]any{
		"threshold": 0.7,
		"count":     100,
	}
	if err := s.WriteDocument("types", doc); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}
	got, err := s.ReadDocument("types")
	if err != nil {
		t.Fatalf("ReadDocument: %v", err)
	}

	if _, ok := got["threshold"].(float64); !ok {
		t.Errorf("threshold decoded as %T, want float64", got["threshold"])
	}
	if _, ok := got["count"].(int); !ok {
		t.Errorf("count decoded as %T, want int", got["count"])
	}
}

func TestRoundTrip_SequenceOrder(t *testing.T) {
	s := &Store{Dir: t.TempDir()}

	doc := map[string]any{"order": []any{"third", "first", "second", "first"}}
	if err := s.WriteDocument("order", doc); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}
	got, err := s.ReadDocument("order")
	if err != nil {
		t.Fatalf("ReadDocument: %v", err)
	}
	if diff := cmp.Diff(doc["order"], got["order"]); diff != "" {
		t.Errorf("sequence order mismatch (-want +got):\n%s", diff)
	}
}

func TestReadDocument_Missing(t *testing.T) {
	s := &Store{Dir: t.TempDir()}
	if _, err := s.ReadDocument("nope"); err == nil {
		t.Fatal("expected error for missing document")
	}
}

func TestReadDocument_Malformed(t *testing.T) {
	dir := t.TempDir()
	s := &Store{Dir: dir}
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("key: [unclosed"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := s.ReadDocument("bad"); err == nil {
		t.Fatal("expected error for malformed document")
	}
}

func TestWriteDefaults_ReadBack(t *testing.T) {
	s := &Store{Dir: filepath.Join(t.TempDir(), "params")}
	if err := WriteDefaults(s); err != nil {
		t.Fatalf("WriteDefaults: %v", err)
	}

	var eda EDAParams
	if err := s.ReadInto(EDADocName, &eda); err != nil {
		t.Fatalf("ReadInto eda: %v", err)
	}
	if diff := cmp.Diff(DefaultEDA(), eda); diff != "" {
		t.Errorf("eda params mismatch (-want +got):\n%s", diff)
	}

	var pre PreprocessParams
	if err := s.ReadInto(PreprocessDocName, &pre); err != nil {
		t.Fatalf("ReadInto preprocess: %v", err)
	}
	if pre.Split.TestSize != 0.2 || pre.Encoding.Method != "onehot" {
		t.Errorf("unexpected preprocess params: %+v", pre)
	}
}
