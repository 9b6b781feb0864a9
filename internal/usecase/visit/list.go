package visit

import (
	"context"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/visit"
	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

type ListVisits struct {
	repo domain.Repository
}

func NewListVisits(repo domain.Repository) *ListVisits {
	return &ListVisits{repo: repo}
}

func (uc *ListVisits) Execute(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Visit, int64, error) {

	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return nil, 0, httperr.ErrBusiness("invalid_period")
	}
	return uc.repo.ListVisits(ctx, f)
}

// ListPatientVisits is ListVisits scoped to one patient that must exist.
type ListPatientVisits struct {
	repo domain.Repository
}

func NewListPatientVisits(repo domain.Repository) *ListPatientVisits {
	return &ListPatientVisits{repo: repo}
}

func (uc *ListPatientVisits) Execute(
	ctx context.Context,
	patientID uint,
	limit, offset int,
) ([]models.Visit, int64, error) {

	ok, err := uc.repo.PatientExists(ctx, patientID)
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return nil, 0, httperr.ErrBusiness("patient_not_found")
	}

	return uc.repo.ListVisits(ctx, domain.ListFilter{
		PatientID: patientID,
		Limit:     limit,
		Offset:    offset,
	})
}
