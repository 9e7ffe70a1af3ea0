// Package registry checks issuer RFCs against a list of tax identifiers
// flagged for simulated operations (EFOS). The in-scope implementation is a
// static demo set; production deployments plug in an authoritative dataset
// behind the same Checker contract.
package registry

import (
	"context"
	"time"
)

// Result is the outcome of a registry lookup.
type Result struct {
	RFC       string    `json:"rfc"`
	Listed    bool      `json:"is_efos"`
	Source    string    `json:"source"`
	CheckedAt time.Time `json:"checked_at"`
}

// Checker performs the lookup. Implementations must have no side effects
// beyond the returned Result.
type Checker interface {
	Check(ctx context.Context, rfc string) (Result, error)
}

// Unknown is the defined fallback when a lookup cannot be performed. The
// caller records the invoice with an unresolved registry status instead of
// blocking the pipeline.
func Unknown(rfc string) Result {
	return Result{
		RFC:       rfc,
		Listed:    false,
		Source:    "unavailable",
		CheckedAt: time.Now().UTC(),
	}
}
