package patient

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/patient"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

type GetMedicalHistory struct {
	repo domain.Repository
}

func NewGetMedicalHistory(repo domain.Repository) *GetMedicalHistory {
	return &GetMedicalHistory{repo: repo}
}

func (uc *GetMedicalHistory) Execute(ctx context.Context, patientID uint) (*models.MedicalHistory, error) {
	if _, err := uc.repo.GetPatient(ctx, patientID); err != nil {
		return nil, err
	}
	return uc.repo.GetMedicalHistory(ctx, patientID)
}

type UpsertMedicalHistory struct {
	repo domain.Repository
}

func NewUpsertMedicalHistory(repo domain.Repository) *UpsertMedicalHistory {
	return &UpsertMedicalHistory{repo: repo}
}

// Execute replaces the whole medical history of the patient.
func (uc *UpsertMedicalHistory) Execute(
	ctx context.Context,
	patientID uint,
	mh models.MedicalHistory,
) (*models.MedicalHistory, error) {

	if _, err := uc.repo.GetPatient(ctx, patientID); err != nil {
		return nil, err
	}

	mh.ID = 0
	mh.PatientID = patientID
	mh.AllergyDetails = strings.TrimSpace(mh.AllergyDetails)
	mh.CurrentMedications = strings.TrimSpace(mh.CurrentMedications)
	mh.PastSurgeries = strings.TrimSpace(mh.PastSurgeries)
	mh.OtherConditions = strings.TrimSpace(mh.OtherConditions)

	if err := uc.repo.UpsertMedicalHistory(ctx, &mh); err != nil {
		return nil, err
	}
	return &mh, nil
}
