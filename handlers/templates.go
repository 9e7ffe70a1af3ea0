package handlers

import (
	"html/template"

	"github.com/gin-gonic/gin"
)

const appName = "Sentinel"

// The two page templates, kept inline so the binary ships self-contained.
const loginHTML = `<!doctype html>
<title>{{.app}} Login</title>
<h2>{{.app}} &ndash; Acceso</h2>
{{if .error}}<p style="color:red">{{.error}}</p>{{end}}
<form method="post">
  <input name="email" placeholder="email" autofocus>
  <input name="password" type="password" placeholder="password">
  <button type="submit">Entrar</button>
</form>
`

const dashboardHTML = `<!doctype html>
<title>{{.app}}</title>
<h2>{{.app}} &ndash; Panel ({{.role}})</h2>
<p><a href="/logout">Salir</a></p>

<h3>Subir CFDI (XML)</h3>
<form method="post" action="/upload_cfdi" enctype="multipart/form-data">
  <input type="file" name="file" accept=".xml">
  <button type="submit">Procesar</button>
</form>

<h3>Subir Evidencia</h3>
<form method="post" action="/upload_evidence" enctype="multipart/form-data">
  <input name="cfdi_uuid" placeholder="UUID del CFDI">
  <input type="file" name="file">
  <button type="submit">Adjuntar</button>
</form>

<h3>Alertas ({{len .alerts}})</h3>
<ul>
{{range .alerts}}<li>{{.InvoiceID}} &ndash; {{.Level}}: {{range .Reasons}}{{.}}; {{end}}</li>
{{end}}</ul>

<h3>CFDIs</h3>
<table border="1" cellpadding="4">
<tr><th>UUID</th><th>Emisor</th><th>Concepto</th><th>Riesgo</th><th>Raz&oacute;n de negocio</th></tr>
{{range .cfdis}}<tr>
  <td>{{.ID}}</td>
  <td>{{.IssuerRFC}}</td>
  <td>{{.Concept}}</td>
  <td>{{.Risk.Level}} ({{.Risk.Score}})</td>
  <td>{{.Justification}}</td>
</tr>
{{end}}</table>

<h3>Exportar</h3>
<a href="/export/isr">C&eacute;dula ISR</a> |
<a href="/export/iva">C&eacute;dula IVA</a> |
<a href="/export/isr.xlsx">C&eacute;dula ISR (XLSX)</a> |
<a href="/export/iva.xlsx">C&eacute;dula IVA (XLSX)</a> |
<a href="/export/json">Exportar Todo (JSON)</a>
`

// LoadTemplates installs the inline page templates on the engine.
func LoadTemplates(r *gin.Engine) {
	t := template.New("login")
	t = template.Must(t.Parse(loginHTML))
	t = template.Must(t.New("dashboard").Parse(dashboardHTML))
	r.SetHTMLTemplate(t)
}
