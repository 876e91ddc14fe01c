package params

// EDADocName and PreprocessDocName are the documents referenced by the
// default pipeline's params lists.
const (
	EDADocName        = "eda_params"
	PreprocessDocName = "preprocess_params"
)

// EDAParams configures the exploratory analysis stage.
type EDAParams struct {
	Visualization struct {
		Figsize      []int  `yaml:"figsize"`
		DPI          int    `yaml:"dpi"`
		ColorPalette string `yaml:"color_palette"`
	} `yaml:"visualization"`
	Analysis struct {
		OutlierThreshold     float64 `yaml:"outlier_threshold"`
		CorrelationThreshold float64 `yaml:"correlation_threshold"`
	} `yaml:"analysis"`
}

// PreprocessParams configures the preprocessing stage.
type PreprocessParams struct {
	Split struct {
		TestSize    float64 `yaml:"test_size"`
		RandomState int     `yaml:"random_state"`
	} `yaml:"split"`
	Encoding struct {
		Method        string `yaml:"method"`
		MaxCategories int    `yaml:"max_categories"`
	} `yaml:"encoding"`
	Imputation struct {
		Strategy string `yaml:"strategy"`
	} `yaml:"imputation"`
}

// DefaultEDA returns the stock EDA parameter document.
func DefaultEDA() EDAParams {
	var p EDAParams
	p.Visualization.Figsize = []int{12, 8}
	p.Visualization.DPI = 100
	p.Visualization.ColorPalette = "husl"
	p.Analysis.OutlierThreshold = 3.0
	p.Analysis.CorrelationThreshold = 0.7
	return p
}

// DefaultPreprocess returns the stock preprocessing parameter document.
func DefaultPreprocess() PreprocessParams {
	var p PreprocessParams
	p.Split.TestSize = 0.2
	p.Split.RandomState = 42
	p.Encoding.Method = "onehot"
	p.Encoding.MaxCategories = 20
	p.Imputation.Strategy = "median"
	return p
}

// WriteDefaults writes both stock documents into the store.
func WriteDefaults(s *Store) error {
	if err := s.WriteDocument(EDADocName, DefaultEDA()); err != nil {
		return err
	}
	return s.WriteDocument(PreprocessDocName, DefaultPreprocess())
}
