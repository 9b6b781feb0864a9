package patient

import (
	"context"
	"time"

	"github.com/BruksfildServices01/dental-clinic/internal/domain/analytics"
	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/patient"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
	"github.com/BruksfildServices01/dental-clinic/internal/timezone"
)

type UpdatePatient struct {
	repo  domain.Repository
	cache analytics.Invalidator
	now   func() time.Time
}

func NewUpdatePatient(repo domain.Repository, cache analytics.Invalidator) *UpdatePatient {
	return &UpdatePatient{repo: repo, cache: cache, now: timezone.Now}
}

// Execute applies only the fields set in in.
func (uc *UpdatePatient) Execute(
	ctx context.Context,
	id uint,
	in PatientInput,
) (*models.Patient, error) {

	p, err := uc.repo.GetPatient(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := apply(p, in, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdatePatient(ctx, p); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)
	return p, nil
}
