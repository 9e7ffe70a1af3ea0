package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arkanum/sentinel/internal/audit"
	"github.com/arkanum/sentinel/internal/evidence"
	"github.com/arkanum/sentinel/internal/storage"
	"github.com/arkanum/sentinel/pkg/logger"
	"github.com/arkanum/sentinel/pkg/metrics"
)

// EvidenceHandler accepts supporting-document uploads linked to an invoice.
type EvidenceHandler struct {
	evidence *evidence.Service
	files    storage.Storage
	trail    *audit.Logger
}

func NewEvidenceHandler(ev *evidence.Service, files storage.Storage, trail *audit.Logger) *EvidenceHandler {
	return &EvidenceHandler{evidence: ev, files: files, trail: trail}
}

// Register installs the upload route on the authenticated group.
func (h *EvidenceHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/upload_evidence", h.Upload)
}

func (h *EvidenceHandler) Upload(c *gin.Context) {
	invoiceID := c.PostForm("cfdi_uuid")
	if invoiceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cfdi_uuid requerido"})
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "archivo requerido"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "archivo ilegible"})
		return
	}
	defer f.Close()

	if err := h.files.Save(c.Request.Context(), fh.Filename, f, fh.Size, fh.Header.Get("Content-Type")); err != nil {
		logger.Errorf("evidence save failed for %s: %v", fh.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo guardar el archivo"})
		return
	}
	saved, err := h.files.Open(c.Request.Context(), fh.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo leer el archivo"})
		return
	}
	defer saved.Close()

	if _, err := h.evidence.Attach(c.Request.Context(), invoiceID, fh.Filename, saved); err != nil {
		logger.Errorf("evidence attach failed for %s: %v", fh.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno"})
		return
	}
	metrics.EvidenceUploaded.Inc()

	actor, _ := c.Get("user")
	username, _ := actor.(string)
	if err := h.trail.Record(c.Request.Context(), username, audit.ActionUploadEvidence, fh.Filename); err != nil {
		logger.Warnf("audit record failed: %v", err)
	}
	c.Redirect(http.StatusFound, "/dashboard")
}
