package invoices

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/arkanum/sentinel/internal/cfdi"
	"github.com/arkanum/sentinel/internal/store"
)

// Repository provides invoice persistence. The collection is append-mostly;
// records are never updated once written.
type Repository interface {
	Append(ctx context.Context, inv *cfdi.Invoice) error
	List(ctx context.Context) ([]cfdi.Invoice, error)
}

// JSONRepository keeps the collection in memory and rewrites the whole
// cfdis.json file on every append. A single writer lock serializes access.
type JSONRepository struct {
	mu    sync.RWMutex
	path  string
	items []cfdi.Invoice
}

// NewJSONRepository loads (or initializes) the collection under dataDir.
func NewJSONRepository(dataDir string) (*JSONRepository, error) {
	r := &JSONRepository{path: filepath.Join(dataDir, "cfdis.json")}
	if err := store.Load(r.path, &r.items, []cfdi.Invoice{}); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *JSONRepository) Append(_ context.Context, inv *cfdi.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *inv)
	if err := store.Save(r.path, r.items); err != nil {
		// roll back the in-memory append so memory matches disk
		r.items = r.items[:len(r.items)-1]
		return err
	}
	return nil
}

func (r *JSONRepository) List(_ context.Context) ([]cfdi.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]cfdi.Invoice, len(r.items))
	copy(out, r.items)
	return out, nil
}
