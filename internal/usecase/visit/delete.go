package visit

import (
	"context"

	"github.com/BruksfildServices01/dental-clinic/internal/domain/analytics"
	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/visit"
)

type DeleteVisit struct {
	repo  domain.Repository
	cache analytics.Invalidator
}

func NewDeleteVisit(repo domain.Repository, cache analytics.Invalidator) *DeleteVisit {
	return &DeleteVisit{repo: repo, cache: cache}
}

func (uc *DeleteVisit) Execute(ctx context.Context, id uint) error {
	v, err := uc.repo.GetVisit(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.DeleteVisit(ctx, v); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx)
	return nil
}
