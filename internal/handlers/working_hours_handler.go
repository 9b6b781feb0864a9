package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dental-clinic/internal/httpresp"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
	"github.com/BruksfildServices01/dental-clinic/internal/usecase/appointment"
)

type WorkingHoursHandler struct {
	getUC    *appointment.GetWorkingHours
	updateUC *appointment.UpdateWorkingHours
}

func NewWorkingHoursHandler(
	getUC *appointment.GetWorkingHours,
	updateUC *appointment.UpdateWorkingHours,
) *WorkingHoursHandler {
	return &WorkingHoursHandler{getUC: getUC, updateUC: updateUC}
}

type WorkingDayConfig struct {
	Weekday    *int   `json:"weekday" binding:"required,min=0,max=6"`
	Active     bool   `json:"active"`
	StartTime  string `json:"start_time" binding:"omitempty,hhmm"`
	EndTime    string `json:"end_time" binding:"omitempty,hhmm"`
	BreakStart string `json:"break_start" binding:"omitempty,hhmm"`
	BreakEnd   string `json:"break_end" binding:"omitempty,hhmm"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required,max=7,dive"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	hours, err := h.getUC.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, hours)
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	days := make([]models.WorkingHours, 0, len(req.Days))
	for _, d := range req.Days {
		days = append(days, models.WorkingHours{
			Weekday:    *d.Weekday,
			Active:     d.Active,
			StartTime:  d.StartTime,
			EndTime:    d.EndTime,
			BreakStart: d.BreakStart,
			BreakEnd:   d.BreakEnd,
		})
	}

	hours, err := h.updateUC.Execute(c.Request.Context(), days)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, hours)
}
