package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultDir is where the log file lives, relative to the workspace root.
const DefaultDir = ".vilain/logs"

const fileName = "vilain.log"

type Config struct {
	Root  string
	Debug bool

	// Dir overrides DefaultDir. Relative values are joined to Root.
	Dir string
}

var (
	mu      sync.RWMutex
	global  = discard()
	logFile *os.File
	logPath string
)

// Setup points the global logger at <root>/<dir>/vilain.log.
// On failure the global logger keeps discarding and the error is returned.
func Setup(cfg Config) (func() error, error) {
	root := filepath.Clean(cfg.Root)
	if cfg.Root == "" {
		root = "."
	}

	dir := cfg.Dir
	if dir == "" {
		dir = DefaultDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, filepath.FromSlash(dir))
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		reset()
		return nil, err
	}

	path := filepath.Join(dir, fileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		reset()
		return nil, err
	}

	l := slog.New(newHandler(f, cfg.Debug))

	mu.Lock()
	global = l
	logFile = f
	logPath = path
	mu.Unlock()

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		logPath = ""
		global = discard()
		return cerr
	}

	return cleanup, nil
}

func newHandler(w io.Writer, debug bool) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}
	if debug {
		opts.Level = slog.LevelDebug
	}
	return slog.NewJSONHandler(w, opts)
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Named tags every record with the emitting component.
func Named(component string) *slog.Logger {
	return L().With("component", component)
}

// Path is empty until Setup succeeds.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	global = discard()
	logFile = nil
	logPath = ""
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
