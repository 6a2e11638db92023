package documents

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, used by tests and
// as a harmless default when no persistence is configured.
type MemoryRepo struct {
	mu    sync.RWMutex
	text  string
	saved bool
}

// Load returns the stored document text.
func (r *MemoryRepo) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.saved {
		return "", ErrNotFound
	}
	return r.text, nil
}

// Save overwrites the stored document text.
func (r *MemoryRepo) Save(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.text = text
	r.saved = true
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
