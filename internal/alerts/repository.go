package alerts

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/arkanum/sentinel/internal/store"
)

type Repository interface {
	Append(ctx context.Context, a *Alert) error
	List(ctx context.Context) ([]Alert, error)
}

// JSONRepository rewrites alerts.json on every append under a writer lock.
type JSONRepository struct {
	mu    sync.RWMutex
	path  string
	items []Alert
}

func NewJSONRepository(dataDir string) (*JSONRepository, error) {
	r := &JSONRepository{path: filepath.Join(dataDir, "alerts.json")}
	if err := store.Load(r.path, &r.items, []Alert{}); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *JSONRepository) Append(_ context.Context, a *Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *a)
	if err := store.Save(r.path, r.items); err != nil {
		r.items = r.items[:len(r.items)-1]
		return err
	}
	return nil
}

func (r *JSONRepository) List(_ context.Context) ([]Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Alert, len(r.items))
	copy(out, r.items)
	return out, nil
}
