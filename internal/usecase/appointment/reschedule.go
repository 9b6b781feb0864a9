package appointment

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/dental-clinic/internal/domain/analytics"
	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-clinic/internal/metrics"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
	"github.com/BruksfildServices01/dental-clinic/internal/timezone"
)

type RescheduleAppointmentInput struct {
	AppointmentID uint
	Date          string
	Time          string
	Reason        string
}

type RescheduleAppointment struct {
	repo  domain.Repository
	cache analytics.Invalidator
	slots slotChecker
}

func NewRescheduleAppointment(
	repo domain.Repository,
	cache analytics.Invalidator,
	settings Settings,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		cache: cache,
		slots: slotChecker{repo: repo, settings: settings, now: timezone.Now},
	}
}

// Execute moves the appointment keeping its duration.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Current state
	// --------------------------------------------------
	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}
	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ New slot rules
	// --------------------------------------------------
	duration := ap.EndTime.Sub(ap.StartTime)
	if duration <= 0 {
		duration = uc.slots.settings.slot()
	}

	start, end, err := uc.slots.check(ctx, in.Date, in.Time, duration)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Apply and save (overlap ignores this appointment)
	// --------------------------------------------------
	if err := domain.Reschedule(ap, start, end, strings.TrimSpace(in.Reason)); err != nil {
		return nil, err
	}

	if err := uc.repo.RescheduleAppointment(ctx, ap); err != nil {
		return nil, err
	}

	metrics.AppointmentsTotal.WithLabelValues("rescheduled").Inc()
	uc.cache.Invalidate(ctx)

	return ap, nil
}
