package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-clinic/internal/httpresp"
	"github.com/BruksfildServices01/dental-clinic/internal/timezone"
	"github.com/BruksfildServices01/dental-clinic/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *appointment.CreateAppointment
	getUC          *appointment.GetAppointment
	updateUC       *appointment.UpdateAppointment
	changeStatusUC *appointment.ChangeAppointmentStatus
	rescheduleUC   *appointment.RescheduleAppointment
	deleteUC       *appointment.DeleteAppointment
	listByDateUC   *appointment.ListAppointmentsByDate
	listByMonthUC  *appointment.ListAppointmentsByMonth
	searchUC       *appointment.SearchAppointments
	upcomingUC     *appointment.ListUpcomingAppointments
	availabilityUC *appointment.GetAvailability
}

func NewAppointmentHandler(
	createUC *appointment.CreateAppointment,
	getUC *appointment.GetAppointment,
	updateUC *appointment.UpdateAppointment,
	changeStatusUC *appointment.ChangeAppointmentStatus,
	rescheduleUC *appointment.RescheduleAppointment,
	deleteUC *appointment.DeleteAppointment,
	listByDateUC *appointment.ListAppointmentsByDate,
	listByMonthUC *appointment.ListAppointmentsByMonth,
	searchUC *appointment.SearchAppointments,
	upcomingUC *appointment.ListUpcomingAppointments,
	availabilityUC *appointment.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		getUC:          getUC,
		updateUC:       updateUC,
		changeStatusUC: changeStatusUC,
		rescheduleUC:   rescheduleUC,
		deleteUC:       deleteUC,
		listByDateUC:   listByDateUC,
		listByMonthUC:  listByMonthUC,
		searchUC:       searchUC,
		upcomingUC:     upcomingUC,
		availabilityUC: availabilityUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	PatientID    *uint  `json:"patient_id"`
	PatientName  string `json:"patient_name" binding:"required"`
	PatientPhone string `json:"patient_phone" binding:"required"`
	Date         string `json:"date" binding:"required"` // YYYY-MM-DD
	Time         string `json:"time" binding:"required"` // HH:mm
	DurationMin  int    `json:"duration_min" binding:"omitempty,min=0"`
	Reason       string `json:"reason"`
	Notes        string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	PatientID    *uint   `json:"patient_id"`
	PatientName  *string `json:"patient_name"`
	PatientPhone *string `json:"patient_phone"`
	Reason       *string `json:"reason"`
	Notes        *string `json:"notes"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,appointment_status"`
	Reason string `json:"reason"`
}

type RescheduleRequest struct {
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Reason string `json:"reason"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), appointment.CreateAppointmentInput{
		PatientID:    req.PatientID,
		PatientName:  req.PatientName,
		PatientPhone: req.PatientPhone,
		Date:         req.Date,
		Time:         req.Time,
		DurationMin:  req.DurationMin,
		Reason:       req.Reason,
		Notes:        req.Notes,
		CreatedBy:    actorID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LISTS
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		dateStr = timezone.Now().Format("2006-01-02")
	}

	date, err := timezone.ParseDate(dateStr)
	if err != nil {
		badRequest(c, "invalid_date")
		return
	}

	apps, err := h.listByDateUC.Execute(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, apps)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		badRequest(c, "invalid_month")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		badRequest(c, "invalid_month")
		return
	}

	apps, err := h.listByMonthUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, apps)
}

func (h *AppointmentHandler) Search(c *gin.Context) {
	from, to, ok := queryPeriod(c)
	if !ok {
		return
	}
	page := httpresp.PageFromQuery(c)

	apps, total, err := h.searchUC.Execute(c.Request.Context(), domain.SearchFilter{
		Status: c.Query("status"),
		Query:  c.Query("query"),
		From:   from,
		To:     to,
		Limit:  page.Limit,
		Offset: page.Offset(),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Paged(c, page, apps, total)
}

func (h *AppointmentHandler) Upcoming(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}

	apps, err := h.upcomingUC.Execute(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, apps)
}

func (h *AppointmentHandler) Availability(c *gin.Context) {
	date, err := timezone.ParseDate(c.Query("date"))
	if err != nil {
		badRequest(c, "invalid_date")
		return
	}
	duration, ok := queryInt(c, "duration_min")
	if !ok {
		return
	}

	av, err := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		Date:     date,
		Duration: minutes(duration),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, av)
}

// ======================================================
// SINGLE APPOINTMENT
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), id, appointment.UpdateAppointmentInput{
		PatientID:    req.PatientID,
		PatientName:  req.PatientName,
		PatientPhone: req.PatientPhone,
		Reason:       req.Reason,
		Notes:        req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_status")
		return
	}

	ap, err := h.changeStatusUC.Execute(c.Request.Context(), id, req.Status, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), appointment.RescheduleAppointmentInput{
		AppointmentID: id,
		Date:          req.Date,
		Time:          req.Time,
		Reason:        req.Reason,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
