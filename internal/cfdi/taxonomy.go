package cfdi

// Static taxonomy: required supporting documents and ISR/IVA treatment per
// category. Configuration data, not computed; CategoryGeneric is the only
// entry with both flags false.
var taxonomy = map[Category]TaxonomyEntry{
	CategoryProfessionalServices: {
		RequiredDocuments: []string{"Contrato", "SLA", "Orden de Servicio", "Entregables", "Evidencia de prestación"},
		ISRDeductible:     true,
		IVACreditable:     true,
	},
	CategoryLeasing: {
		RequiredDocuments: []string{"Contrato de arrendamiento", "Comprobante de pago", "Uso del bien"},
		ISRDeductible:     true,
		IVACreditable:     true,
	},
	CategoryAdvertising: {
		RequiredDocuments: []string{"Contrato", "Brief", "Pautas", "Reportes", "Evidencia"},
		ISRDeductible:     true,
		IVACreditable:     true,
	},
	CategoryGeneric: {
		RequiredDocuments: []string{"Contrato", "Orden de compra", "Evidencia"},
		ISRDeductible:     false,
		IVACreditable:     false,
	},
}

// TaxonomyFor returns the entry for a category. Unknown categories map to
// the generic entry. The document list is copied so callers cannot mutate
// the table.
func TaxonomyFor(cat Category) TaxonomyEntry {
	e, ok := taxonomy[cat]
	if !ok {
		e = taxonomy[CategoryGeneric]
	}
	docs := make([]string, len(e.RequiredDocuments))
	copy(docs, e.RequiredDocuments)
	e.RequiredDocuments = docs
	return e
}
