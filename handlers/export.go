package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arkanum/sentinel/internal/audit"
	"github.com/arkanum/sentinel/internal/export"
	"github.com/arkanum/sentinel/pkg/logger"
	"github.com/arkanum/sentinel/pkg/metrics"
)

// ExportHandler serves the downloadable ledgers. The full JSON dump and
// the spreadsheet variants are gated to directors by the middleware the
// caller passes in.
type ExportHandler struct {
	exporter *export.Exporter
	trail    *audit.Logger
}

func NewExportHandler(e *export.Exporter, trail *audit.Logger) *ExportHandler {
	return &ExportHandler{exporter: e, trail: trail}
}

// Register installs the export routes on the authenticated group.
func (h *ExportHandler) Register(rg *gin.RouterGroup, directorOnly gin.HandlerFunc) {
	rg.GET("/export/isr", h.ISR)
	rg.GET("/export/iva", h.IVA)
	rg.GET("/export/json", directorOnly, h.JSON)
	rg.GET("/export/isr.xlsx", directorOnly, h.ISRXLSX)
	rg.GET("/export/iva.xlsx", directorOnly, h.IVAXLSX)
}

func (h *ExportHandler) actor(c *gin.Context) string {
	v, _ := c.Get("user")
	actor, _ := v.(string)
	return actor
}

func (h *ExportHandler) record(c *gin.Context, action, kind string) {
	metrics.Exports.WithLabelValues(kind).Inc()
	if err := h.trail.Record(c.Request.Context(), h.actor(c), action, ""); err != nil {
		logger.Warnf("audit record failed: %v", err)
	}
}

func (h *ExportHandler) ISR(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="cedula_isr.csv"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	if err := h.exporter.ISRCSV(c.Request.Context(), c.Writer); err != nil {
		logger.Errorf("isr export failed: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	h.record(c, audit.ActionExportISR, "isr_csv")
}

func (h *ExportHandler) IVA(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="cedula_iva.csv"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	if err := h.exporter.IVACSV(c.Request.Context(), c.Writer); err != nil {
		logger.Errorf("iva export failed: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	h.record(c, audit.ActionExportIVA, "iva_csv")
}

func (h *ExportHandler) JSON(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="sentinel_export.json"`)
	c.Header("Content-Type", "application/json; charset=utf-8")
	if err := h.exporter.JSONDump(c.Request.Context(), c.Writer); err != nil {
		logger.Errorf("json export failed: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	h.record(c, audit.ActionExportJSON, "json")
}

func (h *ExportHandler) ISRXLSX(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="cedula_isr.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := h.exporter.ISRXLSX(c.Request.Context(), c.Writer); err != nil {
		logger.Errorf("isr xlsx export failed: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	h.record(c, audit.ActionExportISR, "isr_xlsx")
}

func (h *ExportHandler) IVAXLSX(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="cedula_iva.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := h.exporter.IVAXLSX(c.Request.Context(), c.Writer); err != nil {
		logger.Errorf("iva xlsx export failed: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	h.record(c, audit.ActionExportIVA, "iva_xlsx")
}
