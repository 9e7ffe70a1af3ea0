package cfdi

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParseError reports a malformed or incomplete CFDI document. No partial
// invoice is ever produced alongside one.
type ParseError struct {
	Field string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cfdi parse: %s: %s", e.Field, e.Msg)
}

func parseErr(field, msg string) *ParseError {
	return &ParseError{Field: field, Msg: msg}
}

// Wire shapes for the namespaced Comprobante tree. encoding/xml matches on
// local element names, which covers both the cfd/3 and cfd/4 namespaces.
type xmlComprobante struct {
	SubTotal  string        `xml:"SubTotal,attr"`
	Total     string        `xml:"Total,attr"`
	Fecha     string        `xml:"Fecha,attr"`
	Emisor    *xmlParty     `xml:"Emisor"`
	Receptor  *xmlParty     `xml:"Receptor"`
	Conceptos *xmlConceptos `xml:"Conceptos"`
}

type xmlParty struct {
	RFC string `xml:"Rfc,attr"`
}

type xmlConceptos struct {
	Concepto []xmlConcepto `xml:"Concepto"`
}

type xmlConcepto struct {
	Descripcion string `xml:"Descripcion,attr"`
}

// Parse extracts the invoice fields from a raw CFDI XML document.
//
// Only the first Concepto line item is read; multi-line-item documents are
// not supported beyond that. The returned invoice carries a freshly
// generated identifier for internal tracking rather than the document's own
// fiscal UUID, and has no category, memo or risk yet — those are assigned
// by the ingest pipeline.
func Parse(r io.Reader) (*Invoice, error) {
	var doc xmlComprobante
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, parseErr("document", fmt.Sprintf("invalid XML: %v", err))
	}

	if doc.Emisor == nil {
		return nil, parseErr("Emisor", "element missing")
	}
	if doc.Emisor.RFC == "" {
		return nil, parseErr("Emisor.Rfc", "attribute missing")
	}
	if doc.Receptor == nil {
		return nil, parseErr("Receptor", "element missing")
	}
	if doc.Receptor.RFC == "" {
		return nil, parseErr("Receptor.Rfc", "attribute missing")
	}
	if doc.Conceptos == nil || len(doc.Conceptos.Concepto) == 0 {
		return nil, parseErr("Conceptos.Concepto", "element missing")
	}
	if doc.SubTotal == "" {
		return nil, parseErr("SubTotal", "attribute missing")
	}
	if doc.Total == "" {
		return nil, parseErr("Total", "attribute missing")
	}

	subtotal, err := decimal.NewFromString(doc.SubTotal)
	if err != nil {
		return nil, parseErr("SubTotal", fmt.Sprintf("not a number: %q", doc.SubTotal))
	}
	total, err := decimal.NewFromString(doc.Total)
	if err != nil {
		return nil, parseErr("Total", fmt.Sprintf("not a number: %q", doc.Total))
	}

	return &Invoice{
		ID:           uuid.NewString(),
		IssuerRFC:    doc.Emisor.RFC,
		RecipientRFC: doc.Receptor.RFC,
		Concept:      doc.Conceptos.Concepto[0].Descripcion,
		Subtotal:     subtotal,
		Tax:          total.Sub(subtotal).Round(2),
		Total:        total,
		IssuedAt:     doc.Fecha,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
