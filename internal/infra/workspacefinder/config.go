package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/vilain/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads vilain.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if err := apply(&cfg, y); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return cfg, nil
}

// apply layers parsed values on top of defaults.
func apply(cfg *domain.Config, y yamlConfig) error {
	v := y.Vilain

	if v.Defaults.Vocabulary != "" {
		cfg.Defaults.Vocabulary = v.Defaults.Vocabulary
	}
	if v.Defaults.Frame.Width != 0 || v.Defaults.Frame.Height != 0 {
		if v.Defaults.Frame.Width <= 0 || v.Defaults.Frame.Height <= 0 {
			return fmt.Errorf("defaults.frame must be positive, got %dx%d", v.Defaults.Frame.Width, v.Defaults.Frame.Height)
		}
		cfg.Defaults.Frame = domain.Frame{Width: v.Defaults.Frame.Width, Height: v.Defaults.Frame.Height}
	}

	if v.Thresholds.SameLabelIoU != nil {
		if err := checkThreshold("thresholds.same_label_iou", *v.Thresholds.SameLabelIoU); err != nil {
			return err
		}
		cfg.Thresholds.SameLabelIoU = *v.Thresholds.SameLabelIoU
	}
	if v.Thresholds.AnyLabelIoU != nil {
		if err := checkThreshold("thresholds.any_label_iou", *v.Thresholds.AnyLabelIoU); err != nil {
			return err
		}
		cfg.Thresholds.AnyLabelIoU = *v.Thresholds.AnyLabelIoU
	}

	if v.Generation.UseFixture != nil {
		cfg.Generation.UseFixture = *v.Generation.UseFixture
	}
	if v.Generation.MaxAttempts != 0 {
		if v.Generation.MaxAttempts < 0 {
			return fmt.Errorf("generation.max_attempts must be positive, got %d", v.Generation.MaxAttempts)
		}
		cfg.Generation.MaxAttempts = v.Generation.MaxAttempts
	}
	for name, file := range v.Generation.Fixtures {
		task, err := domain.ParseTask(name)
		if err != nil {
			return fmt.Errorf("generation.fixtures: %w", err)
		}
		cfg.Generation.Fixtures[task] = file
	}

	if v.Paths.DomainsDir != "" {
		cfg.Paths.DomainsDir = v.Paths.DomainsDir
	}
	if v.Paths.ProblemsDir != "" {
		cfg.Paths.ProblemsDir = v.Paths.ProblemsDir
	}
	if v.Paths.VocabulariesDir != "" {
		cfg.Paths.VocabulariesDir = v.Paths.VocabulariesDir
	}
	if v.Paths.BoxesDir != "" {
		cfg.Paths.BoxesDir = v.Paths.BoxesDir
	}
	if v.Paths.FixturesDir != "" {
		cfg.Paths.FixturesDir = v.Paths.FixturesDir
	}
	if v.Paths.RunsDir != "" {
		cfg.Paths.RunsDir = v.Paths.RunsDir
	}
	return nil
}

func checkThreshold(field string, v float64) error {
	if v <= 0 || v > 1 {
		return fmt.Errorf("%s must be in (0,1], got %v", field, v)
	}
	return nil
}

type yamlConfig struct {
	Vilain struct {
		Defaults struct {
			Vocabulary string `yaml:"vocabulary"`
			Frame      struct {
				Width  int `yaml:"width"`
				Height int `yaml:"height"`
			} `yaml:"frame"`
		} `yaml:"defaults"`

		Thresholds struct {
			SameLabelIoU *float64 `yaml:"same_label_iou"`
			AnyLabelIoU  *float64 `yaml:"any_label_iou"`
		} `yaml:"thresholds"`

		Generation struct {
			UseFixture  *bool             `yaml:"use_fixture"`
			MaxAttempts int               `yaml:"max_attempts"`
			Fixtures    map[string]string `yaml:"fixtures"`
		} `yaml:"generation"`

		Paths struct {
			DomainsDir      string `yaml:"domains_dir"`
			ProblemsDir     string `yaml:"problems_dir"`
			VocabulariesDir string `yaml:"vocabularies_dir"`
			BoxesDir        string `yaml:"boxes_dir"`
			FixturesDir     string `yaml:"fixtures_dir"`
			RunsDir         string `yaml:"runs_dir"`
		} `yaml:"paths"`
	} `yaml:"vilain"`
}
