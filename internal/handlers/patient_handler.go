package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/patient"
	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
	"github.com/BruksfildServices01/dental-clinic/internal/httpresp"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
	ucPatient "github.com/BruksfildServices01/dental-clinic/internal/usecase/patient"
	ucVisit "github.com/BruksfildServices01/dental-clinic/internal/usecase/visit"
)

// ======================================================
// HANDLER
// ======================================================

// multipartOverhead is allowed on top of the photo limit for part
// headers and boundaries.
const multipartOverhead = 64 << 10

type PatientHandler struct {
	createUC      *ucPatient.CreatePatient
	getUC         *ucPatient.GetPatient
	updateUC      *ucPatient.UpdatePatient
	deleteUC      *ucPatient.DeletePatient
	listUC        *ucPatient.ListPatients
	uploadPhotoUC *ucPatient.UploadPatientPhoto
	getHistoryUC  *ucPatient.GetMedicalHistory
	upsertUC      *ucPatient.UpsertMedicalHistory
	visitsUC      *ucVisit.ListPatientVisits

	maxPhotoBytes int64
}

func NewPatientHandler(
	createUC *ucPatient.CreatePatient,
	getUC *ucPatient.GetPatient,
	updateUC *ucPatient.UpdatePatient,
	deleteUC *ucPatient.DeletePatient,
	listUC *ucPatient.ListPatients,
	uploadPhotoUC *ucPatient.UploadPatientPhoto,
	getHistoryUC *ucPatient.GetMedicalHistory,
	upsertUC *ucPatient.UpsertMedicalHistory,
	visitsUC *ucVisit.ListPatientVisits,
	maxPhotoBytes int64,
) *PatientHandler {
	return &PatientHandler{
		createUC:      createUC,
		getUC:         getUC,
		updateUC:      updateUC,
		deleteUC:      deleteUC,
		listUC:        listUC,
		uploadPhotoUC: uploadPhotoUC,
		getHistoryUC:  getHistoryUC,
		upsertUC:      upsertUC,
		visitsUC:      visitsUC,
		maxPhotoBytes: maxPhotoBytes,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type PatientRequest struct {
	Name             *string                  `json:"name"`
	DateOfBirth      *string                  `json:"date_of_birth" binding:"omitempty,date"`
	Gender           *string                  `json:"gender" binding:"omitempty,gender"`
	Phone            *string                  `json:"phone" binding:"omitempty,phone"`
	Email            *string                  `json:"email"`
	Address          *string                  `json:"address"`
	Occupation       *string                  `json:"occupation"`
	BloodGroup       *string                  `json:"blood_group" binding:"omitempty,blood_group"`
	EmergencyContact *models.EmergencyContact `json:"emergency_contact"`
	Notes            *string                  `json:"notes"`
}

func (r PatientRequest) input() ucPatient.PatientInput {
	return ucPatient.PatientInput{
		Name:             r.Name,
		DateOfBirth:      r.DateOfBirth,
		Gender:           r.Gender,
		Phone:            r.Phone,
		Email:            r.Email,
		Address:          r.Address,
		Occupation:       r.Occupation,
		BloodGroup:       r.BloodGroup,
		EmergencyContact: r.EmergencyContact,
		Notes:            r.Notes,
	}
}

type MedicalHistoryRequest struct {
	Diabetes         bool `json:"diabetes"`
	Hypertension     bool `json:"hypertension"`
	HeartDisease     bool `json:"heart_disease"`
	Asthma           bool `json:"asthma"`
	Allergies        bool `json:"allergies"`
	BleedingDisorder bool `json:"bleeding_disorder"`
	Epilepsy         bool `json:"epilepsy"`
	ThyroidDisorder  bool `json:"thyroid_disorder"`
	KidneyDisease    bool `json:"kidney_disease"`
	LiverDisease     bool `json:"liver_disease"`
	Hepatitis        bool `json:"hepatitis"`
	HIV              bool `json:"hiv"`
	Pregnancy        bool `json:"pregnancy"`
	Smoker           bool `json:"smoker"`
	AlcoholUse       bool `json:"alcohol_use"`

	AllergyDetails     string `json:"allergy_details"`
	CurrentMedications string `json:"current_medications"`
	PastSurgeries      string `json:"past_surgeries"`
	OtherConditions    string `json:"other_conditions"`
	Notes              string `json:"notes"`
}

func (r MedicalHistoryRequest) model() models.MedicalHistory {
	return models.MedicalHistory{
		Diabetes:           r.Diabetes,
		Hypertension:       r.Hypertension,
		HeartDisease:       r.HeartDisease,
		Asthma:             r.Asthma,
		Allergies:          r.Allergies,
		BleedingDisorder:   r.BleedingDisorder,
		Epilepsy:           r.Epilepsy,
		ThyroidDisorder:    r.ThyroidDisorder,
		KidneyDisease:      r.KidneyDisease,
		LiverDisease:       r.LiverDisease,
		Hepatitis:          r.Hepatitis,
		HIV:                r.HIV,
		Pregnancy:          r.Pregnancy,
		Smoker:             r.Smoker,
		AlcoholUse:         r.AlcoholUse,
		AllergyDetails:     r.AllergyDetails,
		CurrentMedications: r.CurrentMedications,
		PastSurgeries:      r.PastSurgeries,
		OtherConditions:    r.OtherConditions,
		Notes:              r.Notes,
	}
}

// ======================================================
// PATIENTS
// ======================================================

func (h *PatientHandler) List(c *gin.Context) {
	page := httpresp.PageFromQuery(c)

	patients, total, err := h.listUC.Execute(c.Request.Context(), domain.ListFilter{
		Query:  c.Query("query"),
		Gender: c.Query("gender"),
		Limit:  page.Limit,
		Offset: page.Offset(),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Paged(c, page, patients, total)
}

func (h *PatientHandler) Create(c *gin.Context) {
	var req PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	p, err := h.createUC.Execute(c.Request.Context(), req.input(), actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, p)
}

func (h *PatientHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	p, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, p)
}

func (h *PatientHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	p, err := h.updateUC.Execute(c.Request.Context(), id, req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, p)
}

func (h *PatientHandler) Delete(c *gin.Context) {
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
// PHOTO
// ======================================================

func (h *PatientHandler) UploadPhoto(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if h.maxPhotoBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxPhotoBytes+multipartOverhead)
	}

	file, err := c.FormFile("photo")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, httperr.ErrBusiness("photo_too_large"))
			return
		}
		badRequest(c, "invalid_request")
		return
	}
	if h.maxPhotoBytes > 0 && file.Size > h.maxPhotoBytes {
		respondError(c, httperr.ErrBusiness("photo_too_large"))
		return
	}

	f, err := file.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		respondError(c, err)
		return
	}

	p, err := h.uploadPhotoUC.Execute(c.Request.Context(), id, data)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, p)
}

// ======================================================
// MEDICAL HISTORY
// ======================================================

func (h *PatientHandler) GetMedicalHistory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	mh, err := h.getHistoryUC.Execute(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, mh)
}

func (h *PatientHandler) UpsertMedicalHistory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req MedicalHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	mh, err := h.upsertUC.Execute(c.Request.Context(), id, req.model())
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, mh)
}

// ======================================================
// VISITS OF A PATIENT
// ======================================================

func (h *PatientHandler) ListVisits(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	page := httpresp.PageFromQuery(c)

	visits, total, err := h.visitsUC.Execute(c.Request.Context(), id, page.Limit, page.Offset())
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Paged(c, page, visits, total)
}
