package audit

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arkanum/sentinel/internal/store"
)

type Repository interface {
	Append(ctx context.Context, e *Entry) error
	List(ctx context.Context) ([]Entry, error)
}

// JSONRepository rewrites logs.json on every append under a writer lock.
type JSONRepository struct {
	mu    sync.RWMutex
	path  string
	items []Entry
}

func NewJSONRepository(dataDir string) (*JSONRepository, error) {
	r := &JSONRepository{path: filepath.Join(dataDir, "logs.json")}
	if err := store.Load(r.path, &r.items, []Entry{}); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *JSONRepository) Append(_ context.Context, e *Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *e)
	if err := store.Save(r.path, r.items); err != nil {
		r.items = r.items[:len(r.items)-1]
		return err
	}
	return nil
}

func (r *JSONRepository) List(_ context.Context) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, len(r.items))
	copy(out, r.items)
	return out, nil
}

// Logger records actions against the trail.
type Logger struct {
	repo Repository
}

func NewLogger(repo Repository) *Logger {
	return &Logger{repo: repo}
}

// Record appends one entry. Actor may be empty for unauthenticated actions.
func (l *Logger) Record(ctx context.Context, actor, action, detail string) error {
	return l.repo.Append(ctx, &Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Actor:     actor,
		Action:    action,
		Detail:    detail,
	})
}
