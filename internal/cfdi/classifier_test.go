package cfdi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		concept string
		want    Category
	}{
		{"Servicios de Consultoría", CategoryProfessionalServices},
		{"SERVICIO DE LIMPIEZA", CategoryProfessionalServices},
		{"Arrendamiento de nave industrial", CategoryLeasing},
		{"Renta de oficina", CategoryLeasing},
		{"Publicidad digital", CategoryAdvertising},
		{"Campaña de marketing", CategoryAdvertising},
		{"Compra de mobiliario", CategoryGeneric},
		{"", CategoryGeneric},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Classify(tc.concept), "concept %q", tc.concept)
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// Overlapping keywords resolve to the first matching rule.
	require.Equal(t, CategoryProfessionalServices, Classify("SERVICIO de PUBLICIDAD"))
	require.Equal(t, CategoryLeasing, Classify("Renta de espacios para marketing"))
}

func TestClassifyIsDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		require.Equal(t, CategoryProfessionalServices, Classify("Servicios varios"))
	}
}
