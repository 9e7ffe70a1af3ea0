package registry

import (
	"context"
	"time"
)

// StaticChecker is a demo membership test against a fixed RFC set.
type StaticChecker struct {
	listed map[string]struct{}
	source string
}

// NewStaticChecker returns a checker over the bundled demo blacklist.
func NewStaticChecker() *StaticChecker {
	return NewStaticCheckerWithSet([]string{"AAA010101AAA", "EFX990909EFX"}, "SAT/DOF (demo)")
}

// NewStaticCheckerWithSet builds a checker over an arbitrary RFC set, mainly
// for tests and for deployments that load a snapshot of the published list.
func NewStaticCheckerWithSet(rfcs []string, source string) *StaticChecker {
	m := make(map[string]struct{}, len(rfcs))
	for _, r := range rfcs {
		m[r] = struct{}{}
	}
	return &StaticChecker{listed: m, source: source}
}

func (c *StaticChecker) Check(_ context.Context, rfc string) (Result, error) {
	_, ok := c.listed[rfc]
	return Result{
		RFC:       rfc,
		Listed:    ok,
		Source:    c.source,
		CheckedAt: time.Now().UTC(),
	}, nil
}
