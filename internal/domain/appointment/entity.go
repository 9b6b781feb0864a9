package appointment

import (
	"time"

	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func ChangeStatus(ap *models.Appointment, to Status, reason string, now time.Time) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)

	switch to {
	case StatusCancelled:
		ap.CancelledAt = &now
		ap.CancellationReason = reason
	case StatusCompleted:
		ap.CompletedAt = &now
	}
	return nil
}

func Reschedule(ap *models.Appointment, start, end time.Time, reason string) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	from := ap.StartTime
	ap.RescheduledFrom = &from
	ap.RescheduleReason = reason
	ap.RescheduleCount++
	ap.StartTime = start
	ap.EndTime = end
	ap.Status = string(StatusRescheduled)
	return nil
}
