package patient

import (
	"context"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/patient"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

type GetPatient struct {
	repo domain.Repository
}

func NewGetPatient(repo domain.Repository) *GetPatient {
	return &GetPatient{repo: repo}
}

// Execute returns the patient with its medical history, when present.
func (uc *GetPatient) Execute(ctx context.Context, id uint) (*models.Patient, error) {
	return uc.repo.GetPatient(ctx, id)
}
