package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/arkanum/sentinel/internal/alerts"
	"github.com/arkanum/sentinel/internal/audit"
	"github.com/arkanum/sentinel/internal/evidence"
	"github.com/arkanum/sentinel/internal/export"
	"github.com/arkanum/sentinel/internal/invoices"
	"github.com/arkanum/sentinel/internal/registry"
	"github.com/arkanum/sentinel/internal/sessions"
	"github.com/arkanum/sentinel/internal/storage"
	"github.com/arkanum/sentinel/internal/users"
	"github.com/arkanum/sentinel/pkg/middleware"
)

const (
	testCookie = "sentinel_session"
	sampleXML  = `<?xml version="1.0" encoding="UTF-8"?>
<cfdi:Comprobante xmlns:cfdi="http://www.sat.gob.mx/cfd/3" SubTotal="100.00" Total="116.00" Fecha="2024-05-01T10:30:00">
  <cfdi:Emisor Rfc="ABC010101XYZ"/>
  <cfdi:Receptor Rfc="REC010101REC"/>
  <cfdi:Conceptos>
    <cfdi:Concepto Descripcion="Servicios de Consultoría"/>
  </cfdi:Conceptos>
</cfdi:Comprobante>`
)

type app struct {
	router   *gin.Engine
	sessions *sessions.Service
	invoices *invoices.JSONRepository
	audit    *audit.JSONRepository
}

func newApp(t *testing.T) *app {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()

	invRepo, err := invoices.NewJSONRepository(dir)
	require.NoError(t, err)
	alertRepo, err := alerts.NewJSONRepository(dir)
	require.NoError(t, err)
	evRepo, err := evidence.NewJSONRepository(dir)
	require.NoError(t, err)
	auditRepo, err := audit.NewJSONRepository(dir)
	require.NoError(t, err)
	files, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	trail := audit.NewLogger(auditRepo)
	userSvc := users.NewService(users.DefaultAccounts())
	sessSvc := sessions.NewService(sessions.NewMemoryRepository())
	ingestSvc := invoices.NewService(invRepo, alertRepo, evRepo, registry.NewStaticChecker(), trail)
	evidenceSvc := evidence.NewService(evRepo)
	exporter := export.NewExporter(invRepo, alertRepo, auditRepo)

	r := gin.New()
	LoadTemplates(r)
	NewAuthHandler(userSvc, sessSvc, trail, testCookie, time.Hour).Register(r)

	auth := r.Group("/", middleware.RequireSession(sessSvc, userSvc, testCookie))
	directorOnly := middleware.RequireRole(users.RoleDirector, trail)
	NewDashboardHandler(ingestSvc, alertRepo).Register(auth)
	NewCFDIHandler(ingestSvc, files).Register(auth)
	NewEvidenceHandler(evidenceSvc, files, trail).Register(auth)
	NewExportHandler(exporter, trail).Register(auth, directorOnly)

	return &app{router: r, sessions: sessSvc, invoices: invRepo, audit: auditRepo}
}

func (a *app) login(t *testing.T, user string) *http.Cookie {
	t.Helper()
	token, err := a.sessions.Create(httptest.NewRequest("GET", "/", nil).Context(), user, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: testCookie, Value: token}
}

func multipartBody(t *testing.T, fields map[string]string, fileField, filename, contents string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile(fileField, filename)
	require.NoError(t, err)
	_, err = io.WriteString(fw, contents)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestLoginSetsCookieAndRedirects(t *testing.T) {
	a := newApp(t)

	form := strings.NewReader("email=contador@arkanum&password=1234")
	rq := httptest.NewRequest("POST", "/login", form)
	rq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, rq)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/dashboard", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, testCookie, cookies[0].Name)
	require.NotEmpty(t, cookies[0].Value)

	trail, err := a.audit.List(rq.Context())
	require.NoError(t, err)
	require.Len(t, trail, 1)
	require.Equal(t, audit.ActionLogin, trail[0].Action)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	a := newApp(t)

	form := strings.NewReader("email=contador@arkanum&password=wrong")
	rq := httptest.NewRequest("POST", "/login", form)
	rq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, rq)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Empty(t, w.Result().Cookies())
}

func TestDashboardRequiresLogin(t *testing.T) {
	a := newApp(t)

	rq := httptest.NewRequest("GET", "/dashboard", nil)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, rq)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))
}

func TestUploadCFDIIngestsAndRedirects(t *testing.T) {
	a := newApp(t)
	cookie := a.login(t, "contador@arkanum")

	body, ct := multipartBody(t, nil, "file", "factura.xml", sampleXML)
	rq := httptest.NewRequest("POST", "/upload_cfdi", body)
	rq.Header.Set("Content-Type", ct)
	rq.AddCookie(cookie)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, rq)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/dashboard", w.Header().Get("Location"))

	stored, err := a.invoices.List(rq.Context())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, "ABC010101XYZ", stored[0].IssuerRFC)

	// the new invoice shows up on the dashboard
	rq2 := httptest.NewRequest("GET", "/dashboard", nil)
	rq2.AddCookie(cookie)
	w2 := httptest.NewRecorder()
	a.router.ServeHTTP(w2, rq2)
	require.Equal(t, http.StatusOK, w2.Code)
	require.Contains(t, w2.Body.String(), "ABC010101XYZ")
}

func TestUploadCFDIMalformedReturns400(t *testing.T) {
	a := newApp(t)
	cookie := a.login(t, "contador@arkanum")

	body, ct := multipartBody(t, nil, "file", "roto.xml", "<broken")
	rq := httptest.NewRequest("POST", "/upload_cfdi", body)
	rq.Header.Set("Content-Type", ct)
	rq.AddCookie(cookie)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, rq)

	require.Equal(t, http.StatusBadRequest, w.Code)

	stored, err := a.invoices.List(rq.Context())
	require.NoError(t, err)
	require.Empty(t, stored)
}

func TestUploadEvidenceRecordsAndAudits(t *testing.T) {
	a := newApp(t)
	cookie := a.login(t, "contador@arkanum")

	body, ct := multipartBody(t, map[string]string{"cfdi_uuid": "inv-1"}, "file", "contrato.pdf", "contrato firmado")
	rq := httptest.NewRequest("POST", "/upload_evidence", body)
	rq.Header.Set("Content-Type", ct)
	rq.AddCookie(cookie)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, rq)

	require.Equal(t, http.StatusFound, w.Code)

	trail, err := a.audit.List(rq.Context())
	require.NoError(t, err)
	require.Len(t, trail, 1)
	require.Equal(t, audit.ActionUploadEvidence, trail[0].Action)
	require.Equal(t, "contrato.pdf", trail[0].Detail)
}

func TestUploadEvidenceMissingInvoiceID(t *testing.T) {
	a := newApp(t)
	cookie := a.login(t, "contador@arkanum")

	body, ct := multipartBody(t, nil, "file", "contrato.pdf", "x")
	rq := httptest.NewRequest("POST", "/upload_evidence", body)
	rq.Header.Set("Content-Type", ct)
	rq.AddCookie(cookie)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, rq)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportISRAfterUpload(t *testing.T) {
	a := newApp(t)
	cookie := a.login(t, "contador@arkanum")

	body, ct := multipartBody(t, nil, "file", "factura.xml", sampleXML)
	rq := httptest.NewRequest("POST", "/upload_cfdi", body)
	rq.Header.Set("Content-Type", ct)
	rq.AddCookie(cookie)
	a.router.ServeHTTP(httptest.NewRecorder(), rq)

	rq2 := httptest.NewRequest("GET", "/export/isr", nil)
	rq2.AddCookie(cookie)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, rq2)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "uuid,rfc_emisor,concepto,base,deducible")
	require.Contains(t, w.Body.String(), "ABC010101XYZ")
}

func TestExportISREmptyStateIsEmptyBody(t *testing.T) {
	a := newApp(t)
	cookie := a.login(t, "contador@arkanum")

	rq := httptest.NewRequest("GET", "/export/isr", nil)
	rq.AddCookie(cookie)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, rq)

	require.Equal(t, http.StatusOK, w.Code)
	require.Zero(t, w.Body.Len())
}

func TestExportJSONDirectorOnly(t *testing.T) {
	a := newApp(t)

	contador := a.login(t, "contador@arkanum")
	rq := httptest.NewRequest("GET", "/export/json", nil)
	rq.AddCookie(contador)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, rq)
	require.Equal(t, http.StatusForbidden, w.Code)

	director := a.login(t, "director@arkanum")
	rq2 := httptest.NewRequest("GET", "/export/json", nil)
	rq2.AddCookie(director)
	w2 := httptest.NewRecorder()
	a.router.ServeHTTP(w2, rq2)
	require.Equal(t, http.StatusOK, w2.Code)
	require.Contains(t, w2.Body.String(), `"cfdis"`)

	// the denied attempt is on the audit trail
	trail, err := a.audit.List(rq.Context())
	require.NoError(t, err)
	var denied int
	for _, e := range trail {
		if e.Action == audit.ActionDenied {
			denied++
		}
	}
	require.Equal(t, 1, denied)
}

func TestLogoutClearsSession(t *testing.T) {
	a := newApp(t)
	cookie := a.login(t, "contador@arkanum")

	rq := httptest.NewRequest("GET", "/logout", nil)
	rq.AddCookie(cookie)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, rq)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))

	// the old cookie no longer grants access
	rq2 := httptest.NewRequest("GET", "/dashboard", nil)
	rq2.AddCookie(cookie)
	w2 := httptest.NewRecorder()
	a.router.ServeHTTP(w2, rq2)
	require.Equal(t, http.StatusFound, w2.Code)
	require.Equal(t, "/login", w2.Header().Get("Location"))
}

func TestHomeRedirects(t *testing.T) {
	a := newApp(t)

	rq := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, rq)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))

	cookie := a.login(t, "director@arkanum")
	rq2 := httptest.NewRequest("GET", "/", nil)
	rq2.AddCookie(cookie)
	w2 := httptest.NewRecorder()
	a.router.ServeHTTP(w2, rq2)
	require.Equal(t, http.StatusFound, w2.Code)
	require.Equal(t, "/dashboard", w2.Header().Get("Location"))
}
