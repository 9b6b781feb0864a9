package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-clinic/internal/dto"
	"github.com/BruksfildServices01/dental-clinic/internal/timezone"
)

const (
	defaultUpcoming = 10
	maxUpcoming     = 100
)

type ListUpcomingAppointments struct {
	repo domain.Repository
	now  func() time.Time
}

func NewListUpcomingAppointments(repo domain.Repository) *ListUpcomingAppointments {
	return &ListUpcomingAppointments{repo: repo, now: timezone.Now}
}

func (uc *ListUpcomingAppointments) Execute(ctx context.Context, limit int) ([]dto.AppointmentListDTO, error) {
	if limit <= 0 {
		limit = defaultUpcoming
	}
	if limit > maxUpcoming {
		limit = maxUpcoming
	}

	apps, err := uc.repo.ListUpcoming(ctx, uc.now(), limit)
	if err != nil {
		return nil, err
	}
	return dto.NewAppointmentList(apps, timezone.ClinicLocation()), nil
}
