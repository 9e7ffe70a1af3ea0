// Package audit keeps the append-only action trail. Entries are never
// modified or removed.
package audit

import "time"

// Recorded action names.
const (
	ActionLogin          = "LOGIN"
	ActionLogout         = "LOGOUT"
	ActionUploadCFDI     = "UPLOAD_CFDI"
	ActionUploadEvidence = "UPLOAD_EVIDENCE"
	ActionExportISR      = "EXPORT_ISR"
	ActionExportIVA      = "EXPORT_IVA"
	ActionExportJSON     = "EXPORT_JSON"
	ActionDenied         = "ACCESS_DENIED"
)

// Entry is one audit log record.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"ts"`
	Actor     string    `json:"user"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
}
