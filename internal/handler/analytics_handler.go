package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campustrack/campustrack-backend/internal/response"
	"github.com/campustrack/campustrack-backend/internal/service"
)

// AnalyticsHandler serves the analytics and dashboard screens.
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	dashboardService *service.DashboardService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService, dashboardService *service.DashboardService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService, dashboardService: dashboardService}
}

// GetAnalytics godoc
// GET /api/v1/analytics
// Every chart of the analytics screen in one payload.
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	data, err := h.analyticsService.GetAnalytics(c.Request.Context(), time.Now())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, data)
}

// GetDashboard godoc
// GET /api/v1/dashboard
// Today's stat cards plus the most recently registered students.
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	data, err := h.dashboardService.GetDashboard(c.Request.Context(), time.Now())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, data)
}
