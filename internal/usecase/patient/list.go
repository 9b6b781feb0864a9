package patient

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/patient"
	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
	"github.com/BruksfildServices01/dental-clinic/internal/validators"
)

type ListPatients struct {
	repo domain.Repository
}

func NewListPatients(repo domain.Repository) *ListPatients {
	return &ListPatients{repo: repo}
}

func (uc *ListPatients) Execute(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Patient, int64, error) {

	f.Gender = strings.ToLower(strings.TrimSpace(f.Gender))
	if f.Gender != "" && !validators.IsGender(f.Gender) {
		return nil, 0, httperr.ErrBusiness("invalid_gender")
	}

	return uc.repo.ListPatients(ctx, f)
}
