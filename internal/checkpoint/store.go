// Package checkpoint persists per-slug batch progress so interrupted
// runs resume where they left off. Completed and failed are mutually
// exclusive for a slug; marking one side clears the other.
package checkpoint

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/brandkit-cli/internal/config"
)

// State is the full progress snapshot, as persisted.
type State struct {
	Completed []string `json:"completed"`
	Failed    []string `json:"failed"`
}

// HasCompleted reports whether the slug is in the completed set.
func (s State) HasCompleted(slug string) bool { return contains(s.Completed, slug) }

// HasFailed reports whether the slug is in the failed set.
func (s State) HasFailed(slug string) bool { return contains(s.Failed, slug) }

func contains(set []string, slug string) bool {
	for _, s := range set {
		if s == slug {
			return true
		}
	}
	return false
}

// Store is the durable progress record. Every mutation is persisted
// before it returns; the orchestrator relies on that for crash safety.
type Store interface {
	State(ctx context.Context) (State, error)
	Completed(ctx context.Context, slug string) (bool, error)
	MarkCompleted(ctx context.Context, slug string) error
	MarkFailed(ctx context.Context, slug string) error
	Reset(ctx context.Context, slug string) error
	Close() error
}

// Open constructs the configured backend.
func Open(cfg config.CheckpointConfig) (Store, error) {
	switch cfg.Driver {
	case "", "file":
		return NewFileStore(cfg.Path), nil
	case "sqlite":
		return NewSQLite(cfg.Path)
	default:
		return nil, eris.Errorf("checkpoint: unknown driver %q", cfg.Driver)
	}
}
