package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dental-clinic/internal/httpresp"
	ucAnalytics "github.com/BruksfildServices01/dental-clinic/internal/usecase/analytics"
)

type AnalyticsHandler struct {
	dashboard *ucAnalytics.Dashboard
}

func NewAnalyticsHandler(dashboard *ucAnalytics.Dashboard) *AnalyticsHandler {
	return &AnalyticsHandler{dashboard: dashboard}
}

func (h *AnalyticsHandler) Summary(c *gin.Context) {
	s, err := h.dashboard.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *AnalyticsHandler) Patients(c *gin.Context) {
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}

	stats, err := h.dashboard.Patients(c.Request.Context(), year)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, stats)
}

func (h *AnalyticsHandler) Visits(c *gin.Context) {
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}

	stats, err := h.dashboard.Visits(c.Request.Context(), year)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, stats)
}

func (h *AnalyticsHandler) Appointments(c *gin.Context) {
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}

	stats, err := h.dashboard.Appointments(c.Request.Context(), year)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, stats)
}

func (h *AnalyticsHandler) Revenue(c *gin.Context) {
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}

	stats, err := h.dashboard.Revenue(c.Request.Context(), year)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, stats)
}

func (h *AnalyticsHandler) Years(c *gin.Context) {
	years, err := h.dashboard.Years(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, years)
}
