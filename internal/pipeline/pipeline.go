// Package pipeline models the declarative stage graph written to dvc.yaml:
// named stages with a command, ordered dependency and output lists, and
// optional metrics/plots/params references.
package pipeline

import (
	"github.com/pkg/errors"
)

var (
	// ErrDuplicateStage is returned when a stage name is added twice.
	ErrDuplicateStage = errors.New("duplicate stage name")
	// ErrEmptyStageName is returned when a stage has no name.
	ErrEmptyStageName = errors.New("stage name must be set")
	// ErrCycle is returned by Validate when stage dependencies form a cycle.
	ErrCycle = errors.New("stage dependencies form a cycle")
)

// Stage is one named unit of the pipeline. Deps and Outs are ordered:
// they map to positional arguments of the external tool.
type Stage struct {
	Name    string   `yaml:"-"`
	Cmd     string   `yaml:"cmd"`
	Deps    []string `yaml:"deps,omitempty"`
	Outs    []string `yaml:"outs,omitempty"`
	Metrics []string `yaml:"metrics,omitempty"`
	Plots   []string `yaml:"plots,omitempty"`
	Params  []string `yaml:"params,omitempty"`
}

// Pipeline is an ordered collection of stages keyed by unique name.
type Pipeline struct {
	stages []Stage
	index  map[string]int
}

// New creates an empty pipeline.
func New() *Pipeline {
	return &Pipeline{index: make(map[string]int)}
}

// Add appends a stage. A duplicate or empty name is a configuration error.
func (p *Pipeline) Add(s Stage) error {
	if s.Name == "" {
		return ErrEmptyStageName
	}
	if _, ok := p.index[s.Name]; ok {
		return errors.Wrapf(ErrDuplicateStage, "stage %q", s.Name)
	}
	p.index[s.Name] = len(p.stages)
	p.stages = append(p.stages, s)

	return nil
}

// Stages returns the stages in insertion order.
func (p *Pipeline) Stages() []Stage {
	out := make([]Stage, len(p.stages))
	copy(out, p.stages)

	return out
}

// Stage returns the named stage, if present.
func (p *Pipeline) Stage(name string) (Stage, bool) {
	i, ok := p.index[name]
	if !ok {
		return Stage{}, false
	}

	return p.stages[i], true
}

// Names returns the stage names in insertion order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name
	}

	return names
}

// Len returns the number of stages.
func (p *Pipeline) Len() int { return len(p.stages) }
