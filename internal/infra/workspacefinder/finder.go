package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/vilain/internal/domain"
)

// ConfigFileName marks a workspace root.
const ConfigFileName = "vilain.yaml"

// Finder locates a Vilain workspace root by searching for vilain.yaml upward.
type Finder struct {
	ConfigFile string // empty means ConfigFileName
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFileName}
}

// FindRoot walks from startDir (or the directory of a file) up to the
// filesystem root and returns the first directory holding the config file.
func (f *Finder) FindRoot(startDir string) (string, error) {
	const op = "workspacefinder.findroot"

	if startDir == "" {
		return "", &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Err: errors.New("startDir is empty")}
	}

	start, err := searchStart(startDir)
	if err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindExecution, Err: err}
	}

	name := f.ConfigFile
	if name == "" {
		name = ConfigFileName
	}

	for cur := start; ; {
		if info, err := os.Stat(filepath.Join(cur, name)); err == nil && !info.IsDir() {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}

	return "", &domain.OpError{Op: op, Kind: domain.KindNotFound, Path: start, Err: domain.ErrNotFound}
}

func searchStart(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}
	return filepath.Clean(abs), nil
}
