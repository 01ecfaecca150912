package domain

// Config represents the Vilain configuration loaded from vilain.yaml.
type Config struct {
	Defaults   DefaultsConfig
	Thresholds ThresholdsConfig
	Generation GenerationConfig
	Paths      PathsConfig
}

type DefaultsConfig struct {
	Vocabulary string
	Frame      Frame
}

// ThresholdsConfig holds the IoU cut-offs used to drop duplicate detections.
type ThresholdsConfig struct {
	SameLabelIoU float64
	AnyLabelIoU  float64
}

type GenerationConfig struct {
	UseFixture  bool
	MaxAttempts int

	// Fixtures maps a task name to a file (relative to the workspace root)
	// holding canned model output.
	Fixtures map[Task]string
}

type PathsConfig struct {
	DomainsDir      string
	ProblemsDir     string
	VocabulariesDir string
	BoxesDir        string
	FixturesDir     string
	RunsDir         string
}

// DefaultConfig provides sane defaults if vilain.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Vocabulary: "cooking",
			Frame:      Frame{Width: 640, Height: 640},
		},
		Thresholds: ThresholdsConfig{
			SameLabelIoU: 0.9,
			AnyLabelIoU:  0.99,
		},
		Generation: GenerationConfig{
			UseFixture:  true,
			MaxAttempts: 5,
			Fixtures:    map[Task]string{},
		},
		Paths: PathsConfig{
			DomainsDir:      "domains",
			ProblemsDir:     "problems",
			VocabulariesDir: "vocabularies",
			BoxesDir:        "boxes",
			FixturesDir:     "fixtures",
			RunsDir:         "runs",
		},
	}
}
