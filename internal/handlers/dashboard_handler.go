package handlers

import (
	"fitstream_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	*BaseHandler
	dashboardService services.DashboardService
}

func NewDashboardHandler(base *BaseHandler, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      base,
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.GetDashboard)
	rg.GET("/events", h.ListEvents)
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	dashboard, err := h.dashboardService.GetDashboard(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, dashboard)
}

func (h *DashboardHandler) ListEvents(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	db := h.GetDB(c)

	events, err := h.dashboardService.ListEvents(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, events)
}
