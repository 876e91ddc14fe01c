package pipeline

// Default returns the insurance-risk analytics pipeline:
// load_data -> eda -> preprocess.
func Default() *Pipeline {
	p := New()

	// Stage names are unique, so Add cannot fail here.
	_ = p.Add(Stage{
		Name: "load_data",
		Cmd:  "python src/pipeline/load_data.py",
		Deps: []string{
			"src/pipeline/load_data.py",
			"data/raw/MachineLearningRating_v3.txt",
		},
		Outs: []string{
			"data/processed/cleaned_data.csv",
			"data/processed/data_info.json",
		},
		Metrics: []string{"reports/load_metrics.json"},
		Plots:   []string{"reports/data_summary.html"},
	})
	_ = p.Add(Stage{
		Name: "eda",
		Cmd:  "python src/pipeline/eda_pipeline.py",
		Deps: []string{
			"src/pipeline/eda_pipeline.py",
			"data/processed/cleaned_data.csv",
		},
		Outs: []string{
			"reports/eda_report.html",
			"reports/figures/",
		},
		Metrics: []string{"reports/eda_metrics.json"},
		Params:  []string{"params/eda_params.yaml"},
	})
	_ = p.Add(Stage{
		Name: "preprocess",
		Cmd:  "python src/pipeline/preprocess.py",
		Deps: []string{
			"src/pipeline/preprocess.py",
			"data/processed/cleaned_data.csv",
			"params/preprocess_params.yaml",
		},
		Outs: []string{
			"data/processed/train.csv",
			"data/processed/test.csv",
			"models/preprocessor.pkl",
		},
	})

	return p
}
