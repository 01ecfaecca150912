// Package fixturegen serves canned model output from the workspace.
//
// A fixture is either a single file, returned on every attempt, or a
// directory whose files are returned one per attempt in name order.
// Once the directory is exhausted the last file keeps being returned.
//
// Fixtures may reference {{task}}, {{attempt}} and any key of the
// request context, e.g. {{objects}}.
package fixturegen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/aalvaropc/vilain/internal/app/template"
	"github.com/aalvaropc/vilain/internal/domain"
	"github.com/aalvaropc/vilain/internal/ports"
)

type Generator struct {
	root     string
	enabled  bool
	fixtures map[domain.Task]string
}

func New(root string, cfg domain.GenerationConfig) *Generator {
	return &Generator{
		root:     root,
		enabled:  cfg.UseFixture,
		fixtures: cfg.Fixtures,
	}
}

var _ ports.Generator = (*Generator)(nil)

func (g *Generator) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !g.enabled {
		return "", &domain.OpError{
			Op:   "fixturegen.generate",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("fixture generation disabled and no remote generator configured"),
		}
	}

	rel, ok := g.fixtures[req.Task]
	if !ok || rel == "" {
		return "", &domain.OpError{
			Op:   "fixturegen.generate",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("no fixture configured for task %q", req.Task),
		}
	}

	path := rel
	if !filepath.IsAbs(path) {
		path = filepath.Join(g.root, rel)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", notFound(path, err)
	}
	if info.IsDir() {
		path, err = pick(path, req.Attempt)
		if err != nil {
			return "", err
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", notFound(path, err)
	}

	vars := make(map[string]string, len(req.Context)+2)
	for k, v := range req.Context {
		vars[k] = v
	}
	vars["task"] = string(req.Task)
	vars["attempt"] = strconv.Itoa(req.Attempt)

	out, err := template.RenderString(string(b), vars)
	if err != nil {
		if oe, ok := err.(*domain.OpError); ok {
			oe.Path = path
		}
		return "", err
	}
	return out, nil
}

func pick(dir string, attempt int) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", notFound(dir, err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return "", notFound(dir, fmt.Errorf("fixture directory is empty"))
	}
	sort.Strings(files)

	i := attempt - 1
	if i < 0 {
		i = 0
	}
	if i >= len(files) {
		i = len(files) - 1
	}
	return filepath.Join(dir, files[i]), nil
}

func notFound(path string, err error) error {
	return &domain.OpError{
		Op:   "fixturegen.generate",
		Kind: domain.KindNotFound,
		Path: path,
		Err:  err,
	}
}
