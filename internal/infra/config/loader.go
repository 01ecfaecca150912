package config

import (
	"os"

	"github.com/aalvaropc/vilain/internal/domain"
	"gopkg.in/yaml.v3"
)

func LoadVocabulary(path string) (domain.Vocabulary, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Vocabulary{}, &domain.OpError{
			Op:   "config.load_vocabulary",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLVocabulary
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Vocabulary{}, &domain.OpError{
			Op:   "config.load_vocabulary",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapVocabulary(path, dto)
}

// LoadBoxSet reads fixed boxes from a YAML or JSON file.
func LoadBoxSet(path string) ([]domain.Box, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "config.load_boxes",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLBoxSet
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return nil, &domain.OpError{
			Op:   "config.load_boxes",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapBoxSet(path, dto)
}
