package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arkanum/sentinel/internal/cfdi"
	"github.com/arkanum/sentinel/internal/invoices"
	"github.com/arkanum/sentinel/internal/storage"
	"github.com/arkanum/sentinel/pkg/logger"
)

// CFDIHandler accepts CFDI XML uploads and runs them through the ingest
// pipeline.
type CFDIHandler struct {
	ingest *invoices.Service
	files  storage.Storage
}

func NewCFDIHandler(ingest *invoices.Service, files storage.Storage) *CFDIHandler {
	return &CFDIHandler{ingest: ingest, files: files}
}

// Register installs the upload route on the authenticated group.
func (h *CFDIHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/upload_cfdi", h.Upload)
}

func (h *CFDIHandler) Upload(c *gin.Context) {
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

	// keep the raw XML before parsing consumes the stream
	if err := h.files.Save(c.Request.Context(), fh.Filename, f, fh.Size, "text/xml"); err != nil {
		logger.Errorf("upload save failed for %s: %v", fh.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo guardar el archivo"})
		return
	}
	saved, err := h.files.Open(c.Request.Context(), fh.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo leer el archivo"})
		return
	}
	defer saved.Close()

	actor, _ := c.Get("user")
	username, _ := actor.(string)
	if _, err := h.ingest.Ingest(c.Request.Context(), username, fh.Filename, saved); err != nil {
		var perr *cfdi.ParseError
		if errors.As(err, &perr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": perr.Error()})
			return
		}
		logger.Errorf("ingest failed for %s: %v", fh.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno"})
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}
