package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/dental-clinic/internal/domain/analytics"
	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
	"github.com/BruksfildServices01/dental-clinic/internal/metrics"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
	"github.com/BruksfildServices01/dental-clinic/internal/timezone"
)

type ChangeAppointmentStatus struct {
	repo  domain.Repository
	cache analytics.Invalidator
	now   func() time.Time
}

func NewChangeAppointmentStatus(
	repo domain.Repository,
	cache analytics.Invalidator,
) *ChangeAppointmentStatus {
	return &ChangeAppointmentStatus{
		repo:  repo,
		cache: cache,
		now:   timezone.Now,
	}
}

func (uc *ChangeAppointmentStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	rawStatus string,
	reason string,
) (*models.Appointment, error) {

	to, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	if to == domain.StatusRescheduled {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.ChangeStatus(ap, to, strings.TrimSpace(reason), uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	metrics.AppointmentsTotal.WithLabelValues(strings.ToLower(strings.ReplaceAll(string(to), " ", "_"))).Inc()
	uc.cache.Invalidate(ctx)

	return ap, nil
}
