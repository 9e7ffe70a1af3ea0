package cfdi

import "fmt"

// BuildJustification renders the Art. 5 CFF business-reason narrative from
// invoice fields. Purely descriptive template filling, not a legal opinion.
func BuildJustification(inv *Invoice) string {
	return fmt.Sprintf(
		"La operación '%s' se realizó para la obtención de ingresos, "+
			"optimización de procesos y cumplimiento del objeto social. "+
			"Existe sustancia económica al contar con proveedor identificado (%s), "+
			"contraprestación (%s), y documentación de soporte. "+
			"No es una operación artificiosa.",
		inv.Concept, inv.IssuerRFC, inv.Total.StringFixed(2))
}
