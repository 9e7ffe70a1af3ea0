package evidence

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/arkanum/sentinel/internal/store"
)

// Repository provides evidence persistence. ListByInvoice is an O(n) filter
// over the collection computed at read time; there is no cross-reference
// index.
type Repository interface {
	Append(ctx context.Context, ev *Evidence) error
	List(ctx context.Context) ([]Evidence, error)
	ListByInvoice(ctx context.Context, invoiceID string) ([]Evidence, error)
}

// JSONRepository mirrors the invoices store: in-memory slice plus a full
// rewrite of evidences.json on every append, guarded by one writer lock.
type JSONRepository struct {
	mu    sync.RWMutex
	path  string
	items []Evidence
}

func NewJSONRepository(dataDir string) (*JSONRepository, error) {
	r := &JSONRepository{path: filepath.Join(dataDir, "evidences.json")}
	if err := store.Load(r.path, &r.items, []Evidence{}); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *JSONRepository) Append(_ context.Context, ev *Evidence) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *ev)
	if err := store.Save(r.path, r.items); err != nil {
		r.items = r.items[:len(r.items)-1]
		return err
	}
	return nil
}

func (r *JSONRepository) List(_ context.Context) ([]Evidence, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Evidence, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *JSONRepository) ListByInvoice(_ context.Context, invoiceID string) ([]Evidence, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Evidence{}
	for _, ev := range r.items {
		if ev.InvoiceID == invoiceID {
			out = append(out, ev)
		}
	}
	return out, nil
}
