package config

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/vilain/internal/domain"
	"gopkg.in/yaml.v3"
)

func MapVocabulary(path string, yv YAMLVocabulary) (domain.Vocabulary, error) {
	name := strings.TrimSpace(yv.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if len(yv.Detect) == 0 {
		return domain.Vocabulary{}, invalidField(path, "detect", "at least one detect label is required")
	}

	v := domain.Vocabulary{
		Name:       name,
		Detect:     make([]string, 0, len(yv.Detect)),
		Categories: make([]domain.Category, 0, len(yv.Categories)),
		LabelPath:  strings.TrimSpace(yv.Payload.LabelPath),
		BoxPath:    strings.TrimSpace(yv.Payload.BoxPath),
	}

	for i, d := range yv.Detect {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			return domain.Vocabulary{}, invalidField(path, fmt.Sprintf("detect[%d]", i), "label must not be empty")
		}
		v.Detect = append(v.Detect, d)
	}

	for i, c := range yv.Categories {
		fieldPrefix := fmt.Sprintf("categories[%d]", i)
		if strings.TrimSpace(c.Type) == "" {
			return domain.Vocabulary{}, invalidField(path, fieldPrefix+".type", "type is required")
		}
		if len(c.Labels) == 0 {
			return domain.Vocabulary{}, invalidField(path, fieldPrefix+".labels", "at least one label is required")
		}
		v.Categories = append(v.Categories, domain.Category{
			Type:   strings.TrimSpace(c.Type),
			Labels: trimAll(c.Labels),
		})
	}

	return v, nil
}

func MapBoxSet(path string, ys YAMLBoxSet) ([]domain.Box, error) {
	if ys.Mapping != nil {
		return mapBoxMapping(path, ys.Mapping)
	}

	out := make([]domain.Box, 0, len(ys.Boxes))
	for i, b := range ys.Boxes {
		fieldPrefix := fmt.Sprintf("boxes[%d]", i)
		if strings.TrimSpace(b.Label) == "" {
			return nil, invalidField(path, fieldPrefix+".label", "label is required")
		}
		coords, err := toCoords(b.Box)
		if err != nil {
			return nil, invalidField(path, fieldPrefix+".box", err.Error())
		}
		out = append(out, domain.Box{Label: strings.TrimSpace(b.Label), Coords: coords})
	}
	return out, nil
}

func mapBoxMapping(path string, n *yaml.Node) ([]domain.Box, error) {
	out := make([]domain.Box, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		label := strings.TrimSpace(n.Content[i].Value)
		if label == "" {
			return nil, invalidField(path, fmt.Sprintf("[%d]", i/2), "label is required")
		}
		var raw []float64
		if err := n.Content[i+1].Decode(&raw); err != nil {
			return nil, invalidField(path, label, err.Error())
		}
		coords, err := toCoords(raw)
		if err != nil {
			return nil, invalidField(path, label, err.Error())
		}
		out = append(out, domain.Box{Label: label, Coords: coords})
	}
	return out, nil
}

func toCoords(in []float64) ([4]float64, error) {
	var c [4]float64
	if len(in) != 4 {
		return c, fmt.Errorf("box needs 4 coordinates (xmin, ymin, xmax, ymax), got %d", len(in))
	}
	for i, v := range in {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return c, fmt.Errorf("coordinate %d is %v, want a finite number", i, v)
		}
		c[i] = v
	}
	return c, nil
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
