package cfdi

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arkanum/sentinel/internal/registry"
)

// Category is one of the fixed tax-concept taxonomy keys. Labels keep the
// Spanish wording used in the exported ledgers.
type Category string

const (
	CategoryProfessionalServices Category = "SERVICIOS PROFESIONALES"
	CategoryLeasing              Category = "ARRENDAMIENTO"
	CategoryAdvertising          Category = "PUBLICIDAD"
	CategoryGeneric              Category = "GENÉRICO"
)

// RiskLevel is the discrete tier derived from the additive risk score.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "ALTO"
	RiskMedium RiskLevel = "MEDIO"
	RiskLow    RiskLevel = "BAJO"
)

// TaxonomyEntry describes what a category requires to substantiate the
// transaction and how it is treated for ISR/IVA purposes.
type TaxonomyEntry struct {
	RequiredDocuments []string `json:"materialidad"`
	ISRDeductible     bool     `json:"isr_deductible"`
	IVACreditable     bool     `json:"iva_creditable"`
}

// Memo is the materiality/monetary breakdown derived from an invoice and
// its taxonomy entry.
type Memo struct {
	Base              decimal.Decimal `json:"base"`
	Tax               decimal.Decimal `json:"iva"`
	Total             decimal.Decimal `json:"total"`
	LegalBasis        string          `json:"fundamento"`
	RequiredDocuments []string        `json:"documentos_requeridos"`
}

// RiskAssessment is the output of the risk engine. Reasons are accumulated
// in rule-evaluation order.
type RiskAssessment struct {
	Score   int       `json:"score"`
	Level   RiskLevel `json:"level"`
	Reasons []string  `json:"reasons"`
}

// Invoice is one ingested CFDI document after the full pipeline has run.
// The identifier is generated at parse time and is not the document's own
// fiscal UUID.
type Invoice struct {
	ID            string          `json:"uuid"`
	IssuerRFC     string          `json:"emisor_rfc"`
	RecipientRFC  string          `json:"receptor_rfc"`
	Concept       string          `json:"concept"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"iva"`
	Total         decimal.Decimal `json:"total"`
	IssuedAt      string          `json:"fecha"`
	Category      Category        `json:"concept_type"`
	Taxonomy      TaxonomyEntry   `json:"taxonomy"`
	Registry      registry.Result `json:"efos"`
	Memo          Memo            `json:"memoria"`
	Justification string          `json:"razon_negocio"`
	Risk          RiskAssessment  `json:"riesgo"`
	CreatedAt     time.Time       `json:"created_at"`
}
