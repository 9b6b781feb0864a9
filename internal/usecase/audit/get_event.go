package audit

import (
	"context"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/audit"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

type GetEvent struct {
	repo domain.Repository
}

func NewGetEvent(repo domain.Repository) *GetEvent {
	return &GetEvent{repo: repo}
}

func (uc *GetEvent) Execute(ctx context.Context, id uint) (*models.AuditEventLog, error) {
	return uc.repo.GetEvent(ctx, id)
}
