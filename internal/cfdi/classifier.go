package cfdi

import "strings"

// Keyword rules evaluated in priority order: professional services win over
// leasing, leasing over advertising, and anything unmatched is generic.
type keywordRule struct {
	category Category
	keywords []string
}

var classifierRules = []keywordRule{
	{CategoryProfessionalServices, []string{"SERV"}},
	{CategoryLeasing, []string{"ARREND", "RENTA"}},
	{CategoryAdvertising, []string{"PUBLI", "MARKET"}},
}

// Classify maps a free-text concept description to a category. It is total:
// unmatched descriptions fall through to CategoryGeneric, never an error.
func Classify(concept string) Category {
	c := strings.ToUpper(concept)
	for _, rule := range classifierRules {
		for _, kw := range rule.keywords {
			if strings.Contains(c, kw) {
				return rule.category
			}
		}
	}
	return CategoryGeneric
}
