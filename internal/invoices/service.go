package invoices

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/arkanum/sentinel/internal/alerts"
	"github.com/arkanum/sentinel/internal/audit"
	"github.com/arkanum/sentinel/internal/cfdi"
	"github.com/arkanum/sentinel/internal/evidence"
	"github.com/arkanum/sentinel/internal/registry"
	"github.com/arkanum/sentinel/pkg/logger"
	"github.com/arkanum/sentinel/pkg/metrics"
)

// Service runs the ingest pipeline: parse, classify, registry check, memo,
// justification, evidence linkage, risk, persist, alert.
type Service struct {
	invoices Repository
	alerts   alerts.Repository
	evidence evidence.Repository
	checker  registry.Checker
	audit    *audit.Logger
}

func NewService(invoices Repository, alertRepo alerts.Repository, evidenceRepo evidence.Repository, checker registry.Checker, auditLog *audit.Logger) *Service {
	return &Service{
		invoices: invoices,
		alerts:   alertRepo,
		evidence: evidenceRepo,
		checker:  checker,
		audit:    auditLog,
	}
}

// Ingest processes one raw CFDI document end to end and returns the stored
// invoice. A parse failure aborts the whole upload; nothing is persisted.
//
// The category assigned here is final: evidence uploaded afterwards never
// re-scores the stored invoice.
func (s *Service) Ingest(ctx context.Context, actor, filename string, doc io.Reader) (*cfdi.Invoice, error) {
	inv, err := cfdi.Parse(doc)
	if err != nil {
		metrics.ParseFailures.Inc()
		return nil, err
	}

	inv.Category = cfdi.Classify(inv.Concept)
	inv.Taxonomy = cfdi.TaxonomyFor(inv.Category)

	reg, err := s.checker.Check(ctx, inv.IssuerRFC)
	if err != nil {
		logger.Warnf("registry check failed for %s: %v", inv.IssuerRFC, err)
		reg = registry.Unknown(inv.IssuerRFC)
	}
	inv.Registry = reg

	inv.Memo = cfdi.BuildMemo(inv, inv.Taxonomy)
	inv.Justification = cfdi.BuildJustification(inv)

	// The identifier is freshly generated, so this lookup finds evidence
	// only when a caller pre-registered some against the same id. It is
	// kept as a real read so the linkage contract holds in one place.
	linked, err := s.evidence.ListByInvoice(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Risk = cfdi.AssessRisk(inv, reg, len(linked))

	if err := s.invoices.Append(ctx, inv); err != nil {
		return nil, err
	}
	metrics.InvoicesIngested.WithLabelValues(string(inv.Risk.Level)).Inc()

	// The alert append is deliberately outside any transaction boundary
	// with the invoice append: a crash in between loses only the alert.
	if inv.Risk.Level != cfdi.RiskLow {
		a := &alerts.Alert{
			ID:        uuid.NewString(),
			InvoiceID: inv.ID,
			Level:     inv.Risk.Level,
			Reasons:   inv.Risk.Reasons,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.alerts.Append(ctx, a); err != nil {
			logger.Errorf("alert append failed for invoice %s: %v", inv.ID, err)
		}
	}

	if err := s.audit.Record(ctx, actor, audit.ActionUploadCFDI, filename); err != nil {
		logger.Warnf("audit record failed: %v", err)
	}
	return inv, nil
}

// List returns all stored invoices.
func (s *Service) List(ctx context.Context) ([]cfdi.Invoice, error) {
	return s.invoices.List(ctx)
}
