package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

type SearchFilter struct {
	Status string
	Query  string
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

type Repository interface {
	// -------- Appointment (create / conflict) --------

	// CreateAppointment inserts ap after checking, inside the same
	// transaction, that no blocking appointment overlaps it.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// RescheduleAppointment saves ap after a conflict check that ignores ap itself.
	RescheduleAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Availability --------
	GetWorkingHours(
		ctx context.Context,
		weekday int,
	) (*models.WorkingHours, error)

	HasWorkingHours(ctx context.Context) (bool, error)

	ListBlockingForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Listing --------
	ListAppointmentsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	SearchAppointments(
		ctx context.Context,
		f SearchFilter,
	) ([]models.Appointment, int64, error)

	ListUpcoming(
		ctx context.Context,
		from time.Time,
		limit int,
	) ([]models.Appointment, error)
}

type WorkingHoursRepository interface {
	ListWorkingHours(ctx context.Context) ([]models.WorkingHours, error)
	ReplaceWorkingHours(ctx context.Context, days []models.WorkingHours) error
}
