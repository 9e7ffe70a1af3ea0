package cfdi

import "github.com/arkanum/sentinel/internal/registry"

// Additive scoring over an ordered rule list. Evaluation order is part of
// the contract: the reasons list mirrors it.
type riskRule struct {
	applies func(inv *Invoice, reg registry.Result, evidenceCount int) bool
	weight  int
	reason  string
}

var riskRules = []riskRule{
	{
		applies: func(_ *Invoice, reg registry.Result, _ int) bool { return reg.Listed },
		weight:  60,
		reason:  "Proveedor en lista EFOS",
	},
	{
		applies: func(_ *Invoice, _ registry.Result, evidenceCount int) bool { return evidenceCount == 0 },
		weight:  25,
		reason:  "Sin evidencias cargadas",
	},
	{
		applies: func(inv *Invoice, _ registry.Result, _ int) bool { return inv.Category == CategoryGeneric },
		weight:  15,
		reason:  "Concepto genérico",
	},
}

// Score thresholds; ties go to the higher tier.
const (
	highThreshold   = 60
	mediumThreshold = 30
)

// AssessRisk folds the rule list left to right and maps the score onto a
// discrete level. Deterministic, no I/O.
func AssessRisk(inv *Invoice, reg registry.Result, evidenceCount int) RiskAssessment {
	score := 0
	reasons := []string{}
	for _, rule := range riskRules {
		if rule.applies(inv, reg, evidenceCount) {
			score += rule.weight
			reasons = append(reasons, rule.reason)
		}
	}

	level := RiskLow
	switch {
	case score >= highThreshold:
		level = RiskHigh
	case score >= mediumThreshold:
		level = RiskMedium
	}

	return RiskAssessment{Score: score, Level: level, Reasons: reasons}
}
