package visit

import (
	"context"
	"time"

	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

// ListFilter selects visits with From <= visit_date < To.
type ListFilter struct {
	PatientID uint
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

type Repository interface {
	PatientExists(ctx context.Context, patientID uint) (bool, error)

	CreateVisit(ctx context.Context, v *models.Visit) error
	GetVisit(ctx context.Context, id uint) (*models.Visit, error)
	UpdateVisit(ctx context.Context, v *models.Visit) error
	DeleteVisit(ctx context.Context, v *models.Visit) error
	ListVisits(ctx context.Context, f ListFilter) ([]models.Visit, int64, error)
}
