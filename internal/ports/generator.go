package ports

import (
	"context"

	"github.com/aalvaropc/vilain/internal/domain"
)

// Generator produces raw model output for a task.
type Generator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (string, error)
}
