package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/visit"
	"github.com/BruksfildServices01/dental-clinic/internal/httpresp"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
	ucVisit "github.com/BruksfildServices01/dental-clinic/internal/usecase/visit"
)

// ======================================================
// HANDLER
// ======================================================

type VisitHandler struct {
	createUC      *ucVisit.CreateVisit
	getUC         *ucVisit.GetVisit
	updateUC      *ucVisit.UpdateVisit
	deleteUC      *ucVisit.DeleteVisit
	listUC        *ucVisit.ListVisits
	paymentLinkUC *ucVisit.CreatePaymentLink
}

func NewVisitHandler(
	createUC *ucVisit.CreateVisit,
	getUC *ucVisit.GetVisit,
	updateUC *ucVisit.UpdateVisit,
	deleteUC *ucVisit.DeleteVisit,
	listUC *ucVisit.ListVisits,
	paymentLinkUC *ucVisit.CreatePaymentLink,
) *VisitHandler {
	return &VisitHandler{
		createUC:      createUC,
		getUC:         getUC,
		updateUC:      updateUC,
		deleteUC:      deleteUC,
		listUC:        listUC,
		paymentLinkUC: paymentLinkUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type VisitRequest struct {
	PatientID uint   `json:"patient_id"`
	VisitDate string `json:"visit_date"` // YYYY-MM-DD, empty = today

	ChiefComplaint      string   `json:"chief_complaint"`
	TriggerFactors      []string `json:"trigger_factors"`
	DurationOfComplaint string   `json:"duration_of_complaint"`

	Findings      []models.ToothFinding `json:"findings"`
	Diagnosis     string                `json:"diagnosis"`
	TreatmentPlan string                `json:"treatment_plan"`
	Procedures    []models.Procedure    `json:"procedures"`

	Dentist string `json:"dentist"`
	Notes   string `json:"notes"`
}

func (r VisitRequest) input() ucVisit.VisitInput {
	return ucVisit.VisitInput{
		PatientID:           r.PatientID,
		VisitDate:           r.VisitDate,
		ChiefComplaint:      r.ChiefComplaint,
		TriggerFactors:      r.TriggerFactors,
		DurationOfComplaint: r.DurationOfComplaint,
		Findings:            r.Findings,
		Diagnosis:           r.Diagnosis,
		TreatmentPlan:       r.TreatmentPlan,
		Procedures:          r.Procedures,
		Dentist:             r.Dentist,
		Notes:               r.Notes,
	}
}

// ======================================================
// VISITS
// ======================================================

func (h *VisitHandler) List(c *gin.Context) {
	from, to, ok := queryPeriod(c)
	if !ok {
		return
	}

	var patientID uint
	if raw := c.Query("patient_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			badRequest(c, "invalid_patient_id")
			return
		}
		patientID = uint(id)
	}

	page := httpresp.PageFromQuery(c)

	visits, total, err := h.listUC.Execute(c.Request.Context(), domain.ListFilter{
		PatientID: patientID,
		From:      from,
		To:        to,
		Limit:     page.Limit,
		Offset:    page.Offset(),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Paged(c, page, visits, total)
}

func (h *VisitHandler) Create(c *gin.Context) {
	var req VisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	v, err := h.createUC.Execute(c.Request.Context(), req.input(), actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, v)
}

func (h *VisitHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	v, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, v)
}

func (h *VisitHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req VisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	v, err := h.updateUC.Execute(c.Request.Context(), id, req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, v)
}

func (h *VisitHandler) Delete(c *gin.Context) {
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

// ======================================================
// PAYMENT LINK
// ======================================================

func (h *VisitHandler) CreatePaymentLink(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	link, err := h.paymentLinkUC.Execute(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, link)
}
