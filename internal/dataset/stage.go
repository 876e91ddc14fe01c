package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadStage is the load_data pipeline stage: read the raw delimited
// file, write it back as a comma-separated cleaned dataset and record
// profile and metric documents. Base is the caller-supplied workspace
// root; no working-directory guessing happens here.
type LoadStage struct {
	Base      string
	RawPath   string // relative to Base
	Delimiter rune   // 0 means DefaultDelimiter
}

// Metrics is the reports/load_metrics.json document.
type Metrics struct {
	RowsLoaded    int   `json:"rows_loaded"`
	ColumnsLoaded int   `json:"columns_loaded"`
	SourceBytes   int64 `json:"source_bytes"`
}

// Stage output locations, relative to Base.
const (
	CleanedRelPath = "data/processed/cleaned_data.csv"
	InfoRelPath    = "data/processed/data_info.json"
	MetricsRelPath = "reports/load_metrics.json"
)

// Run executes the stage, returning the loaded table and the recorded
// metrics.
func (s *LoadStage) Run() (*Table, *Metrics, error) {
	delim := s.Delimiter
	if delim == 0 {
		delim = DefaultDelimiter
	}

	rawPath := filepath.Join(s.Base, s.RawPath)
	t, err := Load(rawPath, delim)
	if err != nil {
		return nil, nil, err
	}

	if err := s.writeCleaned(t); err != nil {
		return nil, nil, err
	}
	if err := writeJSON(filepath.Join(s.Base, InfoRelPath), t.Info()); err != nil {
		return nil, nil, err
	}

	rows, cols := t.Shape()
	m := &Metrics{RowsLoaded: rows, ColumnsLoaded: cols}
	if info, err := os.Stat(rawPath); err == nil {
		m.SourceBytes = info.Size()
	}
	if err := writeJSON(filepath.Join(s.Base, MetricsRelPath), m); err != nil {
		return nil, nil, err
	}
	return t, m, nil
}

func (s *LoadStage) writeCleaned(t *Table) error {
	path := filepath.Join(s.Base, CleanedRelPath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create processed dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create cleaned dataset: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush cleaned dataset: %w", err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create %s dir: %w", filepath.Dir(path), err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
