package patient

import (
	"context"

	"github.com/BruksfildServices01/dental-clinic/internal/domain/analytics"
	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/patient"
)

type DeletePatient struct {
	repo  domain.Repository
	cache analytics.Invalidator
}

func NewDeletePatient(repo domain.Repository, cache analytics.Invalidator) *DeletePatient {
	return &DeletePatient{repo: repo, cache: cache}
}

// Execute removes the patient with its medical history and visits.
// Linked appointments are kept and unlinked.
func (uc *DeletePatient) Execute(ctx context.Context, id uint) error {
	p, err := uc.repo.GetPatient(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeletePatient(ctx, p); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx)
	return nil
}
