package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	InvoicesIngested = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "sentinel", Name: "invoices_ingested_total", Help: "Number of CFDI invoices ingested, by risk level."},
		[]string{"level"},
	)
	ParseFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "sentinel", Name: "cfdi_parse_failures_total", Help: "Number of CFDI uploads rejected by the parser."},
	)
	EvidenceUploaded = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "sentinel", Name: "evidence_uploaded_total", Help: "Number of evidence files uploaded."},
	)
	Exports = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "sentinel", Name: "exports_total", Help: "Number of ledger exports served, by kind."},
		[]string{"kind"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "sentinel", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "sentinel", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(InvoicesIngested)
	reg.MustRegister(ParseFailures)
	reg.MustRegister(EvidenceUploaded)
	reg.MustRegister(Exports)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
