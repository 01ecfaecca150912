package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aalvaropc/vilain/internal/domain"
	"github.com/aalvaropc/vilain/internal/ports"
	"github.com/aalvaropc/vilain/internal/usecase/extract"
	"github.com/aalvaropc/vilain/internal/usecase/pddl"
	"github.com/aalvaropc/vilain/internal/usecase/plan"
)

// Generate asks a generator for a task's output and keeps the first
// attempt whose output holds a well-formed fragment.
type Generate struct {
	gen    ports.Generator
	policy RetryPolicy
	vocab  domain.Vocabulary
	log    *slog.Logger
}

type GenerateOption func(*Generate)

func WithRetryPolicy(p RetryPolicy) GenerateOption {
	return func(uc *Generate) { uc.policy = p }
}

// WithDetectionVocabulary sets the JSONPath selectors used for detect output.
func WithDetectionVocabulary(v domain.Vocabulary) GenerateOption {
	return func(uc *Generate) { uc.vocab = v }
}

func WithGenerateLogger(l *slog.Logger) GenerateOption {
	return func(uc *Generate) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewGenerate(gen ports.Generator, opts ...GenerateOption) *Generate {
	uc := &Generate{
		gen:    gen,
		policy: DefaultRetryPolicy(),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *Generate) Execute(ctx context.Context, task domain.Task, known map[string]string) (domain.GenerationResult, error) {
	policy := uc.policy
	userOnRetry := policy.OnRetry
	policy.OnRetry = func(err error, attempt int) {
		uc.log.Warn("generate.attempt.failed", "task", task, "attempt", attempt, "error", err)
		if userOnRetry != nil {
			userOnRetry(err, attempt)
		}
	}

	res, n, err := Attempt(ctx, policy, func(ctx context.Context, attempt int) (domain.GenerationResult, error) {
		raw, err := uc.gen.Generate(ctx, domain.GenerationRequest{Task: task, Attempt: attempt, Context: known})
		if err != nil {
			return domain.GenerationResult{}, err
		}
		return uc.interpret(task, raw)
	})
	if err != nil {
		uc.log.Error("generate.failed", "task", task, "attempts", n, "error", err)
		return domain.GenerationResult{}, fmt.Errorf("generate %s after %d attempt(s): %w", task, n, err)
	}

	res.Attempts = n
	uc.log.Info("generate.ok", "task", task, "attempts", n)
	return res, nil
}

func (uc *Generate) interpret(task domain.Task, raw string) (domain.GenerationResult, error) {
	res := domain.GenerationResult{Task: task, Raw: raw}

	switch task {
	case domain.TaskInit:
		frag, err := extract.Extract(raw, extract.PartInit)
		if err != nil {
			return res, err
		}
		res.Fragment = frag
		res.Init = pddl.InitPredicates(frag)

	case domain.TaskGoal:
		frag, err := extract.Extract(raw, extract.PartGoal)
		if err != nil {
			return res, err
		}
		res.Fragment = frag
		res.Goal = pddl.GoalPredicates(frag)

	case domain.TaskWhole:
		frag, err := extract.Extract(raw, extract.PartWhole)
		if err != nil {
			return res, err
		}
		p, err := pddl.ParseProblem(frag)
		if err != nil {
			return res, err
		}
		res.Fragment = frag
		res.Init = p.Init
		res.Goal = p.Goal

	case domain.TaskPlan:
		steps, err := plan.Decode(raw)
		if err != nil {
			return res, err
		}
		frag, _ := extract.Span(raw, extract.Brackets)
		res.Fragment = frag
		res.Plan = steps

	case domain.TaskDetect:
		frag, err := extract.JSONPayload(raw)
		if err != nil {
			return res, err
		}
		boxes, err := extract.Detections(frag, uc.vocab.LabelPath, uc.vocab.BoxPath)
		if err != nil {
			return res, err
		}
		res.Fragment = frag
		res.Boxes = boxes

	default:
		return res, &domain.OpError{
			Op:   "generate.interpret",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unknown task %q", task),
		}
	}
	return res, nil
}
