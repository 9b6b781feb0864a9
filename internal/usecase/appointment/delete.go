package appointment

import (
	"context"

	"github.com/BruksfildServices01/dental-clinic/internal/domain/analytics"
	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-clinic/internal/metrics"
)

type DeleteAppointment struct {
	repo  domain.Repository
	cache analytics.Invalidator
}

func NewDeleteAppointment(repo domain.Repository, cache analytics.Invalidator) *DeleteAppointment {
	return &DeleteAppointment{repo: repo, cache: cache}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, appointmentID uint) error {
	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteAppointment(ctx, ap); err != nil {
		return err
	}

	metrics.AppointmentsTotal.WithLabelValues("deleted").Inc()
	uc.cache.Invalidate(ctx)
	return nil
}
