package evidence

import "time"

// Evidence is one uploaded supporting file. Records are created on upload
// and never updated or deleted; the owning invoice identifier is a plain
// foreign key without referential-integrity enforcement.
type Evidence struct {
	ID         string    `json:"id"`
	InvoiceID  string    `json:"cfdi_uuid"`
	Filename   string    `json:"filename"`
	SHA256     string    `json:"hash"`
	UploadedAt time.Time `json:"uploaded_at"`
}
