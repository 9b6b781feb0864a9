package patient

import (
	"context"
	"time"

	"github.com/BruksfildServices01/dental-clinic/internal/domain/analytics"
	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/patient"
	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
	"github.com/BruksfildServices01/dental-clinic/internal/timezone"
)

type CreatePatient struct {
	repo  domain.Repository
	cache analytics.Invalidator
	now   func() time.Time
}

func NewCreatePatient(repo domain.Repository, cache analytics.Invalidator) *CreatePatient {
	return &CreatePatient{repo: repo, cache: cache, now: timezone.Now}
}

func (uc *CreatePatient) Execute(
	ctx context.Context,
	in PatientInput,
	createdBy string,
) (*models.Patient, error) {

	if in.Name == nil {
		return nil, httperr.ErrBusiness("invalid_name")
	}
	if in.Phone == nil {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	p := &models.Patient{CreatedBy: createdBy}
	if err := apply(p, in, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.CreatePatient(ctx, p); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)
	return p, nil
}
