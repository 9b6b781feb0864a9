package audit

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/audit"
	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

type ListEventsInput struct {
	Table    string
	Action   string
	ActorID  string
	RecordID string
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

type ListEvents struct {
	repo domain.Repository
}

func NewListEvents(repo domain.Repository) *ListEvents {
	return &ListEvents{repo: repo}
}

func (uc *ListEvents) Execute(
	ctx context.Context,
	in ListEventsInput,
) ([]models.AuditEventLog, int64, error) {

	f := domain.Filter{
		Table:    strings.TrimSpace(in.Table),
		ActorID:  strings.TrimSpace(in.ActorID),
		RecordID: strings.TrimSpace(in.RecordID),
		From:     in.From,
		To:       in.To,
		Limit:    in.Limit,
		Offset:   in.Offset,
	}

	if raw := strings.TrimSpace(in.Action); raw != "" {
		f.Action = domain.NormalizeAction(raw)
		if f.Action == "" {
			return nil, 0, httperr.ErrBusiness("invalid_action")
		}
	}

	if f.From != nil && f.To != nil && !f.To.After(*f.From) {
		return nil, 0, httperr.ErrBusiness("invalid_period")
	}

	return uc.repo.ListEvents(ctx, f)
}
