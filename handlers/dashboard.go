package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arkanum/sentinel/internal/alerts"
	"github.com/arkanum/sentinel/internal/invoices"
	"github.com/arkanum/sentinel/pkg/logger"
)

// DashboardHandler renders the main panel with invoices and alerts.
type DashboardHandler struct {
	invoices *invoices.Service
	alerts   alerts.Repository
}

func NewDashboardHandler(inv *invoices.Service, al alerts.Repository) *DashboardHandler {
	return &DashboardHandler{invoices: inv, alerts: al}
}

// Register installs the dashboard route on the authenticated group.
func (h *DashboardHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Dashboard)
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	invs, err := h.invoices.List(c.Request.Context())
	if err != nil {
		logger.Errorf("invoice list failed: %v", err)
		c.String(http.StatusInternalServerError, "error interno")
		return
	}
	als, err := h.alerts.List(c.Request.Context())
	if err != nil {
		logger.Errorf("alert list failed: %v", err)
		c.String(http.StatusInternalServerError, "error interno")
		return
	}
	role, _ := c.Get("role")
	c.HTML(http.StatusOK, "dashboard", gin.H{
		"app":    appName,
		"role":   role,
		"cfdis":  invs,
		"alerts": als,
	})
}
