// Package dataset loads the delimited raw insurance table and derives
// the lightweight profile the pipeline records: shape, column names and
// per-column missing-value counts.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
)

// DefaultDelimiter is the field separator of the raw rating file.
const DefaultDelimiter = '|'

// Table is a loaded delimited dataset: a header row plus data rows.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Load reads a delimited file into a Table. The first record is the
// header. Short rows are padded so every row has one cell per column.
func Load(path string, delimiter rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s has no header row", path)
	}

	t := &Table{Columns: records[0]}
	for _, rec := range records[1:] {
		if len(rec) < len(t.Columns) {
			padded := make([]string, len(t.Columns))
			copy(padded, rec)
			rec = padded
		}
		t.Rows = append(t.Rows, rec[:len(t.Columns)])
	}
	return t, nil
}

// Shape returns (rows, columns), header excluded.
func (t *Table) Shape() (int, int) {
	return len(t.Rows), len(t.Columns)
}

// Head returns the first n data rows.
func (t *Table) Head(n int) [][]string {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return t.Rows[:n]
}

// ColumnMissing is one entry of the missing-value report.
type ColumnMissing struct {
	Column  string
	Count   int
	Percent float64
}

// MissingReport returns the columns with at least one empty cell,
// sorted by missing count descending.
func (t *Table) MissingReport() []ColumnMissing {
	counts := t.missingCounts()
	var report []ColumnMissing
	for i, col := range t.Columns {
		if counts[i] == 0 {
			continue
		}
		report = append(report, ColumnMissing{
			Column:  col,
			Count:   counts[i],
			Percent: 100 * float64(counts[i]) / float64(len(t.Rows)),
		})
	}
	sort.SliceStable(report, func(i, j int) bool { return report[i].Count > report[j].Count })
	return report
}

func (t *Table) missingCounts() []int {
	counts := make([]int, len(t.Columns))
	for _, row := range t.Rows {
		for i, cell := range row {
			if cell == "" {
				counts[i]++
			}
		}
	}
	return counts
}

// Info is the data_info.json document written by the load stage.
type Info struct {
	Shape             []int              `json:"shape"`
	Columns           []string           `json:"columns"`
	MissingPercentage map[string]float64 `json:"missing_percentage"`
}

// Info profiles the table.
func (t *Table) Info() Info {
	rows, cols := t.Shape()
	missing := make(map[string]float64, cols)
	counts := t.missingCounts()
	for i, col := range t.Columns {
		pct := 0.0
		if rows > 0 {
			pct = 100 * float64(counts[i]) / float64(rows)
		}
		missing[col] = pct
	}
	return Info{
		Shape:             []int{rows, cols},
		Columns:           append([]string(nil), t.Columns...),
		MissingPercentage: missing,
	}
}
