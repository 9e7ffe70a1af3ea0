package cfdi

// Fixed legal-basis labels attached to every memo.
const legalBasis = "LISR Art. 25, LIVA Art. 5, CFF Art. 5"

// BuildMemo derives the monetary breakdown and required-document list for an
// invoice under its taxonomy entry. Pure and deterministic.
func BuildMemo(inv *Invoice, entry TaxonomyEntry) Memo {
	docs := make([]string, len(entry.RequiredDocuments))
	copy(docs, entry.RequiredDocuments)
	return Memo{
		Base:              inv.Subtotal,
		Tax:               inv.Tax,
		Total:             inv.Total,
		LegalBasis:        legalBasis,
		RequiredDocuments: docs,
	}
}
