package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-clinic/internal/dto"
	"github.com/BruksfildServices01/dental-clinic/internal/timezone"
)

type SearchAppointments struct {
	repo domain.Repository
}

func NewSearchAppointments(repo domain.Repository) *SearchAppointments {
	return &SearchAppointments{repo: repo}
}

// Execute expects f.Status to be empty or a raw status name.
func (uc *SearchAppointments) Execute(
	ctx context.Context,
	f domain.SearchFilter,
) ([]dto.AppointmentListDTO, int64, error) {

	if f.Status != "" {
		s, err := domain.ParseStatus(f.Status)
		if err != nil {
			return nil, 0, err
		}
		f.Status = string(s)
	}

	apps, total, err := uc.repo.SearchAppointments(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return dto.NewAppointmentList(apps, timezone.ClinicLocation()), total, nil
}
