package patient

import (
	"context"

	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

type ListFilter struct {
	Query  string
	Gender string
	Limit  int
	Offset int
}

type Repository interface {
	CreatePatient(ctx context.Context, p *models.Patient) error
	GetPatient(ctx context.Context, id uint) (*models.Patient, error)
	UpdatePatient(ctx context.Context, p *models.Patient) error
	DeletePatient(ctx context.Context, p *models.Patient) error
	ListPatients(ctx context.Context, f ListFilter) ([]models.Patient, int64, error)

	GetMedicalHistory(ctx context.Context, patientID uint) (*models.MedicalHistory, error)
	UpsertMedicalHistory(ctx context.Context, mh *models.MedicalHistory) error
}
