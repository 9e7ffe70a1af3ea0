package evidence

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Service attaches uploaded supporting files to invoices by identifier.
// Attaching evidence never triggers re-scoring of an already stored
// invoice; risk is computed once at ingest time.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Attach digests the file contents, records the evidence and returns it.
func (s *Service) Attach(ctx context.Context, invoiceID, filename string, contents io.Reader) (*Evidence, error) {
	h := sha256.New()
	if _, err := io.Copy(h, contents); err != nil {
		return nil, fmt.Errorf("hash evidence %s: %w", filename, err)
	}
	ev := &Evidence{
		ID:         uuid.NewString(),
		InvoiceID:  invoiceID,
		Filename:   filename,
		SHA256:     hex.EncodeToString(h.Sum(nil)),
		UploadedAt: time.Now().UTC(),
	}
	if err := s.repo.Append(ctx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// ForInvoice returns the evidence linked to an invoice, exact-match on the
// owning identifier.
func (s *Service) ForInvoice(ctx context.Context, invoiceID string) ([]Evidence, error) {
	return s.repo.ListByInvoice(ctx, invoiceID)
}
