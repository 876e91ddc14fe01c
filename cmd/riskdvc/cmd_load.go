package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jossieT/insurance-risk-analytics/internal/dataset"
	"github.com/jossieT/insurance-risk-analytics/internal/format"
)

var loadDataFlags struct {
	data      string
	delimiter string
	preview   int
}

var loadDataCmd = &cobra.Command{
	Use:   "load-data",
	Short: "Run the load_data pipeline stage",
	Long: "Loads the raw delimited dataset, writes the cleaned CSV plus the\n" +
		"data profile and load metrics documents, and prints a missing-value\n" +
		"report.",
	RunE: runLoadData,
}

func init() {
	f := loadDataCmd.Flags()
	f.StringVar(&loadDataFlags.data, "data", "data/raw/MachineLearningRating_v3.txt", "Raw data file, relative to the root")
	f.StringVar(&loadDataFlags.delimiter, "delimiter", "|", "Field delimiter of the raw file")
	f.IntVar(&loadDataFlags.preview, "preview", 0, "Print the first N rows")
}

func runLoadData(cmd *cobra.Command, _ []string) error {
	root, err := workspaceRoot()
	if err != nil {
		return err
	}
	if len(loadDataFlags.delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", loadDataFlags.delimiter)
	}
	out := cmd.OutOrStdout()

	stage := &dataset.LoadStage{
		Base:      root,
		RawPath:   loadDataFlags.data,
		Delimiter: rune(loadDataFlags.delimiter[0]),
	}
	tbl, metrics, err := stage.Run()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Loaded %d rows x %d columns (%d bytes)\n",
		metrics.RowsLoaded, metrics.ColumnsLoaded, metrics.SourceBytes)
	fmt.Fprintf(out, "Wrote %s, %s, %s\n",
		dataset.CleanedRelPath, dataset.InfoRelPath, dataset.MetricsRelPath)

	if report := tbl.MissingReport(); len(report) > 0 {
		mt := format.NewTable(format.ASCII)
		mt.Header("Column", "Missing", "Percent")
		mt.AlignRight(2, 3)
		for _, e := range report {
			mt.Row(e.Column, e.Count, fmt.Sprintf("%.2f", e.Percent))
		}
		fmt.Fprintln(out, mt.String())
	}

	if n := loadDataFlags.preview; n > 0 {
		pt := format.NewTable(format.ASCII)
		header := make([]string, len(tbl.Columns))
		copy(header, tbl.Columns)
		pt.Header(header...)
		for _, row := range tbl.Head(n) {
			vals := make([]any, len(row))
			for i, c := range row {
				vals[i] = format.Truncate(c, 24)
			}
			pt.Row(vals...)
		}
		fmt.Fprintln(out, pt.String())
	}
	return nil
}
