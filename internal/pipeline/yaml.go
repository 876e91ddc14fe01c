package pipeline

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// document is the on-disk shape: a single top-level stages mapping.
// Stage order inside the mapping is significant and preserved.

// MarshalYAML renders the pipeline as a stages mapping in insertion order.
func (p *Pipeline) MarshalYAML() (any, error) {
	stagesNode := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range p.stages {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(s.Name); err != nil {
			return nil, errors.Wrapf(err, "unable to encode stage name %q", s.Name)
		}
		valNode := &yaml.Node{}
		if err := valNode.Encode(s); err != nil {
			return nil, errors.Wrapf(err, "unable to encode stage %q", s.Name)
		}
		stagesNode.Content = append(stagesNode.Content, keyNode, valNode)
	}

	rootKey := &yaml.Node{}
	if err := rootKey.Encode("stages"); err != nil {
		return nil, errors.Wrap(err, "unable to encode stages key")
	}

	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{rootKey, stagesNode},
	}, nil
}

// UnmarshalYAML reconstructs the pipeline from a stages mapping,
// preserving stage order.
func (p *Pipeline) UnmarshalYAML(value *yaml.Node) error {
	if p.index == nil {
		p.index = make(map[string]int)
	}
	if value.Kind != yaml.MappingNode {
		return errors.New("pipeline document must be a mapping")
	}

	var stagesNode *yaml.Node
	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i].Value == "stages" {
			stagesNode = value.Content[i+1]

			break
		}
	}
	if stagesNode == nil {
		return errors.New("pipeline document has no stages mapping")
	}
	if stagesNode.Kind != yaml.MappingNode {
		return errors.New("stages must be a mapping")
	}

	for i := 0; i+1 < len(stagesNode.Content); i += 2 {
		name := stagesNode.Content[i].Value
		var s Stage
		if err := stagesNode.Content[i+1].Decode(&s); err != nil {
			return errors.Wrapf(err, "unable to decode stage %q", name)
		}
		s.Name = name
		if err := p.Add(s); err != nil {
			return err
		}
	}

	return nil
}

// Marshal serializes the pipeline to YAML.
func (p *Pipeline) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, errors.Wrap(err, "unable to marshal pipeline")
	}

	return data, nil
}

// Parse deserializes a pipeline document. A malformed document is
// rejected, never repaired.
func Parse(data []byte) (*Pipeline, error) {
	p := New()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, errors.Wrap(err, "unable to parse pipeline")
	}

	return p, nil
}

// WriteFile validates the pipeline and writes it to path (e.g. dvc.yaml).
func (p *Pipeline) WriteFile(path string) error {
	if err := p.Validate(); err != nil {
		return err
	}
	data, err := p.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "unable to write %s", path)
	}

	return nil
}

// LoadFile reads and parses a pipeline document from path.
func LoadFile(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", path)
	}

	return Parse(data)
}
