package usecase

import (
	"errors"
	"testing"

	"github.com/aalvaropc/vilain/internal/domain"
)

type recordingInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
	err   error
}

func (r *recordingInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	r.spec = spec
	r.force = force
	return r.err
}

func TestInitWorkspace_Delegates(t *testing.T) {
	ri := &recordingInitializer{}
	if err := NewInitWorkspace(ri).Execute("/tmp/ws", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ri.spec.Root != "/tmp/ws" || !ri.force {
		t.Fatalf("unexpected call %+v force=%v", ri.spec, ri.force)
	}

	ri.err = errors.New("exists")
	if err := NewInitWorkspace(ri).Execute("/tmp/ws", false); err == nil {
		t.Fatalf("expected error")
	}
}

func TestInitWorkspace_EmptyRoot(t *testing.T) {
	ri := &recordingInitializer{}
	err := NewInitWorkspace(ri).Execute("  ", false)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid config, got %v", err)
	}
	if ri.spec.Root != "" {
		t.Fatalf("initializer must not be called, got %+v", ri.spec)
	}
}
