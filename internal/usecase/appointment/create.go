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
	"github.com/BruksfildServices01/dental-clinic/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	PatientID    *uint
	PatientName  string
	PatientPhone string

	Date        string
	Time        string
	DurationMin int

	Reason string
	Notes  string

	CreatedBy string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	cache analytics.Invalidator
	slots slotChecker
}

func NewCreateAppointment(
	repo domain.Repository,
	cache analytics.Invalidator,
	settings Settings,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		cache: cache,
		slots: slotChecker{repo: repo, settings: settings, now: timezone.Now},
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Patient contact
	// --------------------------------------------------
	name := strings.TrimSpace(in.PatientName)
	if name == "" {
		return nil, httperr.ErrBusiness("invalid_name")
	}
	phone := validators.NormalizePhone(in.PatientPhone)
	if phone == "" {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	duration, err := uc.slots.settings.duration(in.DurationMin)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Date / time, advance, working hours
	// --------------------------------------------------
	start, end, err := uc.slots.check(ctx, in.Date, in.Time, duration)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Create (overlap checked inside the transaction)
	// --------------------------------------------------
	ap := &models.Appointment{
		PatientID:    in.PatientID,
		PatientName:  name,
		PatientPhone: phone,
		StartTime:    start,
		EndTime:      end,
		Status:       string(domain.InitialStatus()),
		Reason:       strings.TrimSpace(in.Reason),
		Notes:        in.Notes,
		CreatedBy:    in.CreatedBy,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	metrics.AppointmentsTotal.WithLabelValues("created").Inc()
	uc.cache.Invalidate(ctx)

	return ap, nil
}

func (uc *CreateAppointment) withClock(now func() time.Time) *CreateAppointment {
	uc.slots.now = now
	return uc
}
