package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/arkanum/sentinel/internal/alerts"
	"github.com/arkanum/sentinel/internal/audit"
	"github.com/arkanum/sentinel/internal/cfdi"
	"github.com/arkanum/sentinel/internal/invoices"
)

// Exporter reshapes the accumulated records into the downloadable ledgers.
type Exporter struct {
	invoices invoices.Repository
	alerts   alerts.Repository
	audit    audit.Repository
}

func NewExporter(inv invoices.Repository, al alerts.Repository, au audit.Repository) *Exporter {
	return &Exporter{invoices: inv, alerts: al, audit: au}
}

var (
	isrHeader = []string{"uuid", "rfc_emisor", "concepto", "base", "deducible"}
	ivaHeader = []string{"uuid", "rfc_emisor", "concepto", "iva", "acreditable"}
)

// isrRows keeps only ISR-deductible invoices.
func isrRows(list []cfdi.Invoice) [][]string {
	var rows [][]string
	for _, c := range list {
		if !c.Taxonomy.ISRDeductible {
			continue
		}
		rows = append(rows, []string{c.ID, c.IssuerRFC, c.Concept, c.Memo.Base.String(), "true"})
	}
	return rows
}

// ivaRows keeps only IVA-creditable invoices.
func ivaRows(list []cfdi.Invoice) [][]string {
	var rows [][]string
	for _, c := range list {
		if !c.Taxonomy.IVACreditable {
			continue
		}
		rows = append(rows, []string{c.ID, c.IssuerRFC, c.Concept, c.Memo.Tax.String(), "true"})
	}
	return rows
}

// writeCSV emits header+rows, or nothing at all when no row qualifies.
// An empty ledger is a valid export, not an error.
func writeCSV(w io.Writer, header []string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// ISRCSV writes the cédula ISR ledger.
func (e *Exporter) ISRCSV(ctx context.Context, w io.Writer) error {
	list, err := e.invoices.List(ctx)
	if err != nil {
		return fmt.Errorf("list invoices: %w", err)
	}
	return writeCSV(w, isrHeader, isrRows(list))
}

// IVACSV writes the cédula IVA ledger.
func (e *Exporter) IVACSV(ctx context.Context, w io.Writer) error {
	list, err := e.invoices.List(ctx)
	if err != nil {
		return fmt.Errorf("list invoices: %w", err)
	}
	return writeCSV(w, ivaHeader, ivaRows(list))
}

// Snapshot is the verbatim full-state dump.
type Snapshot struct {
	CFDIs  []cfdi.Invoice `json:"cfdis"`
	Alerts []alerts.Alert `json:"alerts"`
	Logs   []audit.Entry  `json:"logs"`
}

// JSONDump writes the entire invoice/alert/audit state as indented JSON.
func (e *Exporter) JSONDump(ctx context.Context, w io.Writer) error {
	invs, err := e.invoices.List(ctx)
	if err != nil {
		return fmt.Errorf("list invoices: %w", err)
	}
	als, err := e.alerts.List(ctx)
	if err != nil {
		return fmt.Errorf("list alerts: %w", err)
	}
	logs, err := e.audit.List(ctx)
	if err != nil {
		return fmt.Errorf("list audit log: %w", err)
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(Snapshot{CFDIs: invs, Alerts: als, Logs: logs})
}
