package fsworkspace

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/vilain/internal/domain"
	"github.com/aalvaropc/vilain/internal/infra/logger"
	"github.com/aalvaropc/vilain/internal/ports"
)

// Initializer lays out a workspace from the embedded templates.
type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init creates the configured directory layout and copies the embedded
// templates. Existing files are kept unless force is set.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)
	paths := domain.DefaultConfig().Paths

	for _, d := range []string{
		paths.DomainsDir,
		paths.ProblemsDir,
		paths.VocabulariesDir,
		paths.BoxesDir,
		paths.FixturesDir,
		paths.RunsDir,
		logger.DefaultDir,
	} {
		dir := filepath.Join(root, filepath.FromSlash(d))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return initError(dir, err)
		}
	}

	if err := ensureGitignore(root, []string{paths.RunsDir + "/", ".vilain/"}); err != nil {
		return initError(filepath.Join(root, ".gitignore"), err)
	}

	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		dst := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(p, "templates/")))
		if !force && fileExists(dst) {
			return nil
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return initError(p, err)
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return initError(dst, err)
		}
		if err := os.WriteFile(dst, b, 0o644); err != nil {
			return initError(dst, err)
		}
		return nil
	})
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func initError(path string, err error) error {
	return &domain.OpError{
		Op:   "fsworkspace.init",
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}

func ensureGitignore(root string, entries []string) error {
	const header = "# Vilain"

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 64)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
