package visit

import (
	"context"
	"time"

	"github.com/BruksfildServices01/dental-clinic/internal/domain/analytics"
	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/visit"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
	"github.com/BruksfildServices01/dental-clinic/internal/timezone"
)

type UpdateVisit struct {
	repo  domain.Repository
	cache analytics.Invalidator
	now   func() time.Time
}

func NewUpdateVisit(repo domain.Repository, cache analytics.Invalidator) *UpdateVisit {
	return &UpdateVisit{repo: repo, cache: cache, now: timezone.Now}
}

// Execute replaces the editable fields. The patient of a visit never
// changes; in.PatientID is ignored.
func (uc *UpdateVisit) Execute(
	ctx context.Context,
	id uint,
	in VisitInput,
) (*models.Visit, error) {

	v, err := uc.repo.GetVisit(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := apply(v, in, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateVisit(ctx, v); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)
	return v, nil
}
