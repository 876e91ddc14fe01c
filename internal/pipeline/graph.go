package pipeline

import (
	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
)

// Validate checks that stage dependencies form a DAG. An edge runs from
// the stage producing an output (or params file) to every stage listing
// that path as a dependency. Dependencies that no stage produces are
// treated as raw external inputs and are not an error.
func (p *Pipeline) Validate() error {
	g := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())

	for _, s := range p.stages {
		if err := g.AddVertex(s.Name); err != nil {
			return errors.Wrapf(err, "unable to add stage %q", s.Name)
		}
	}

	producer := make(map[string]string)
	for _, s := range p.stages {
		for _, out := range s.Outs {
			producer[out] = s.Name
		}
	}

	for _, s := range p.stages {
		for _, dep := range append(append([]string{}, s.Deps...), s.Params...) {
			from, ok := producer[dep]
			if !ok {
				continue
			}
			err := g.AddEdge(from, s.Name)
			switch {
			case err == nil:
			case errors.Is(err, graph.ErrEdgeAlreadyExists):
			case errors.Is(err, graph.ErrEdgeCreatesCycle):
				return errors.Wrapf(ErrCycle, "%s -> %s", from, s.Name)
			default:
				return errors.Wrapf(err, "unable to add edge %s -> %s", from, s.Name)
			}
		}
	}

	return nil
}
