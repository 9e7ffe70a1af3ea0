package cfdi

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkanum/sentinel/internal/registry"
)

func invoiceWithCategory(cat Category) *Invoice {
	return &Invoice{ID: "inv-1", Category: cat}
}

func TestAssessRiskNoTriggers(t *testing.T) {
	got := AssessRisk(invoiceWithCategory(CategoryLeasing), registry.Result{Listed: false}, 1)
	require.Equal(t, 0, got.Score)
	require.Equal(t, RiskLow, got.Level)
	require.Empty(t, got.Reasons)
	require.NotNil(t, got.Reasons, "reasons marshals as [] not null")
}

func TestAssessRiskScoreTable(t *testing.T) {
	cases := []struct {
		name          string
		listed        bool
		evidenceCount int
		category      Category
		wantScore     int
		wantLevel     RiskLevel
	}{
		{"nothing", false, 1, CategoryLeasing, 0, RiskLow},
		{"generic only", false, 1, CategoryGeneric, 15, RiskLow},
		{"no evidence only", false, 0, CategoryLeasing, 25, RiskLow},
		{"no evidence and generic", false, 0, CategoryGeneric, 40, RiskMedium},
		{"listed only", true, 1, CategoryLeasing, 60, RiskHigh},
		{"listed and generic", true, 1, CategoryGeneric, 75, RiskHigh},
		{"listed and no evidence", true, 0, CategoryLeasing, 85, RiskHigh},
		{"all triggers", true, 0, CategoryGeneric, 100, RiskHigh},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AssessRisk(invoiceWithCategory(tc.category), registry.Result{Listed: tc.listed}, tc.evidenceCount)
			require.Equal(t, tc.wantScore, got.Score)
			require.Equal(t, tc.wantLevel, got.Level)
		})
	}
}

func TestAssessRiskReasonsFollowEvaluationOrder(t *testing.T) {
	got := AssessRisk(invoiceWithCategory(CategoryGeneric), registry.Result{Listed: true}, 0)
	require.Equal(t, []string{
		"Proveedor en lista EFOS",
		"Sin evidencias cargadas",
		"Concepto genérico",
	}, got.Reasons)
}

func TestAssessRiskLevelBoundaries(t *testing.T) {
	// 25 < 30 stays low, 40 crosses into medium, 60 into high: the tier
	// boundaries use >= so exact threshold sums land on the higher tier.
	low := AssessRisk(invoiceWithCategory(CategoryLeasing), registry.Result{}, 0)
	require.Equal(t, 25, low.Score)
	require.Equal(t, RiskLow, low.Level)

	medium := AssessRisk(invoiceWithCategory(CategoryGeneric), registry.Result{}, 0)
	require.Equal(t, 40, medium.Score)
	require.Equal(t, RiskMedium, medium.Level)

	high := AssessRisk(invoiceWithCategory(CategoryLeasing), registry.Result{Listed: true}, 1)
	require.Equal(t, 60, high.Score)
	require.Equal(t, RiskHigh, high.Level)
}

func TestAssessRiskMonotonic(t *testing.T) {
	base := AssessRisk(invoiceWithCategory(CategoryLeasing), registry.Result{}, 1).Score
	withGeneric := AssessRisk(invoiceWithCategory(CategoryGeneric), registry.Result{}, 1).Score
	withNoEvidence := AssessRisk(invoiceWithCategory(CategoryGeneric), registry.Result{}, 0).Score
	withListed := AssessRisk(invoiceWithCategory(CategoryGeneric), registry.Result{Listed: true}, 0).Score
	require.LessOrEqual(t, base, withGeneric)
	require.LessOrEqual(t, withGeneric, withNoEvidence)
	require.LessOrEqual(t, withNoEvidence, withListed)
}
