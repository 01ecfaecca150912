package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aalvaropc/vilain/internal/domain"
	"github.com/aalvaropc/vilain/internal/ports"
	"github.com/aalvaropc/vilain/internal/usecase/pddl"
	"golang.org/x/sync/errgroup"
)

const defaultParseConcurrency = 4

type ParseDocuments struct {
	docs        ports.DocumentLoader
	log         *slog.Logger
	concurrency int
}

type ParseOption func(*ParseDocuments)

func WithParseLogger(l *slog.Logger) ParseOption {
	return func(uc *ParseDocuments) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithConcurrency bounds how many documents ParseAll parses at once.
func WithConcurrency(n int) ParseOption {
	return func(uc *ParseDocuments) {
		if n > 0 {
			uc.concurrency = n
		}
	}
}

func NewParseDocuments(dl ports.DocumentLoader, opts ...ParseOption) *ParseDocuments {
	uc := &ParseDocuments{
		docs:        dl,
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		concurrency: defaultParseConcurrency,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Domain loads and parses a domain document.
func (uc *ParseDocuments) Domain(ctx context.Context, path string) (domain.Domain, error) {
	if err := ctx.Err(); err != nil {
		return domain.Domain{}, err
	}
	doc, err := uc.docs.LoadDocument(domain.DocumentDomain, path)
	if err != nil {
		return domain.Domain{}, err
	}
	d, err := pddl.ParseDomain(doc.Text)
	if err != nil {
		uc.log.Warn("parse.domain.failed", "path", doc.Path, "error", err)
		return domain.Domain{}, withPath(err, doc.Path)
	}
	uc.log.Info("parse.domain.ok", "path", doc.Path, "predicates", len(d.Predicates), "actions", len(d.Actions))
	return d, nil
}

// Problem loads and parses a problem document.
func (uc *ParseDocuments) Problem(ctx context.Context, path string) (domain.Problem, error) {
	if err := ctx.Err(); err != nil {
		return domain.Problem{}, err
	}
	doc, err := uc.docs.LoadDocument(domain.DocumentProblem, path)
	if err != nil {
		return domain.Problem{}, err
	}
	p, err := pddl.ParseProblem(doc.Text)
	if err != nil {
		uc.log.Warn("parse.problem.failed", "path", doc.Path, "error", err)
		return domain.Problem{}, withPath(err, doc.Path)
	}
	uc.log.Info("parse.problem.ok", "path", doc.Path, "objects", len(p.Objects), "init", len(p.Init), "goal", len(p.Goal))
	return p, nil
}

// ParseResult is the outcome for one document of a batch.
type ParseResult struct {
	Ref     domain.DocumentRef
	Domain  domain.Domain
	Problem domain.Problem
	Err     error
}

// ParseAll parses every document of a kind under root concurrently.
// Results keep the listing order. Per-document failures land in
// ParseResult.Err; only listing or cancellation errors are returned.
func (uc *ParseDocuments) ParseAll(ctx context.Context, kind domain.DocumentKind, root string) ([]ParseResult, error) {
	refs, err := uc.docs.ListDocuments(kind, root)
	if err != nil {
		return nil, err
	}

	results := make([]ParseResult, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)

	for i, ref := range refs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r := ParseResult{Ref: ref}
			switch kind {
			case domain.DocumentDomain:
				r.Domain, r.Err = uc.Domain(gctx, ref.Path)
			case domain.DocumentProblem:
				r.Problem, r.Err = uc.Problem(gctx, ref.Path)
			default:
				r.Err = fmt.Errorf("unknown document kind %q", kind)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// withPath fills the Path of an OpError if it is missing.
func withPath(err error, path string) error {
	if oe, ok := err.(*domain.OpError); ok && oe.Path == "" {
		cp := *oe
		cp.Path = path
		return &cp
	}
	return err
}
