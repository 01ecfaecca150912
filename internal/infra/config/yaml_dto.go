package config

import "gopkg.in/yaml.v3"

type YAMLVocabulary struct {
	Name       string         `yaml:"name"`
	Detect     []string       `yaml:"detect"`
	Categories []YAMLCategory `yaml:"categories"`
	Payload    YAMLPayload    `yaml:"payload"`
}

type YAMLCategory struct {
	Type   string   `yaml:"type"`
	Labels []string `yaml:"labels"`
}

// YAMLPayload holds the JSONPath selectors for list-shaped detector output.
type YAMLPayload struct {
	LabelPath string `yaml:"label_path"`
	BoxPath   string `yaml:"box_path"`
}

// YAMLBoxSet accepts two shapes:
//
//	boxes:
//	  - label: knife_holder
//	    box: [0.64, 0.57, 0.71, 0.63]
//
// or a top-level label -> box mapping (JSON files use this one). The mapping
// is kept as a node so key order survives decoding.
type YAMLBoxSet struct {
	Boxes   []YAMLBox
	Mapping *yaml.Node
}

type YAMLBox struct {
	Label string    `yaml:"label"`
	Box   []float64 `yaml:"box"`
}

func (s *YAMLBoxSet) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			if n.Content[i].Value == "boxes" && n.Content[i+1].Kind == yaml.SequenceNode {
				return n.Content[i+1].Decode(&s.Boxes)
			}
		}
		s.Mapping = n
		return nil
	}
	return n.Decode(&s.Boxes)
}
