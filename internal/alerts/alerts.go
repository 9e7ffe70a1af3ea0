package alerts

import (
	"time"

	"github.com/arkanum/sentinel/internal/cfdi"
)

// Alert is raised when an invoice lands above the minimum risk tier.
// Alerts reference the invoice by identifier and are never mutated.
type Alert struct {
	ID        string         `json:"id"`
	InvoiceID string         `json:"cfdi_uuid"`
	Level     cfdi.RiskLevel `json:"level"`
	Reasons   []string       `json:"reasons"`
	CreatedAt time.Time      `json:"ts"`
}
