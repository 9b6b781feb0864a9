package visit

import (
	"context"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/visit"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

type GetVisit struct {
	repo domain.Repository
}

func NewGetVisit(repo domain.Repository) *GetVisit {
	return &GetVisit{repo: repo}
}

func (uc *GetVisit) Execute(ctx context.Context, id uint) (*models.Visit, error) {
	return uc.repo.GetVisit(ctx, id)
}
