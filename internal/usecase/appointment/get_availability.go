package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-clinic/internal/timezone"
)

type Availability struct {
	Date     string            `json:"date"`
	Open     bool              `json:"open"`
	Slots    []domain.TimeSlot `json:"slots"`
	Booked   []domain.TimeSlot `json:"booked"`
	Duration int               `json:"duration_min"`
}

type GetAvailability struct {
	repo     domain.Repository
	settings Settings
}

func NewGetAvailability(repo domain.Repository, settings Settings) *GetAvailability {
	return &GetAvailability{repo: repo, settings: settings}
}

// Execute returns the free slots of the day and the blocking
// appointments already booked. in.Date carries the clinic location;
// in.Duration zero means the configured slot length.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*Availability, error) {

	duration := in.Duration
	if duration <= 0 {
		duration = uc.settings.slot()
	}

	loc := timezone.ClinicLocation()
	day := time.Date(in.Date.Year(), in.Date.Month(), in.Date.Day(), 0, 0, 0, 0, loc)

	busy, err := uc.repo.ListBlockingForPeriod(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	out := &Availability{
		Date:     day.Format("2006-01-02"),
		Slots:    []domain.TimeSlot{},
		Booked:   domain.BookedSlots(busy, loc),
		Duration: int(duration / time.Minute),
	}

	wh, err := uc.repo.GetWorkingHours(ctx, int(day.Weekday()))
	if err != nil {
		return nil, err
	}
	if wh == nil || !wh.Active {
		return out, nil
	}

	out.Open = true
	out.Slots = domain.BuildSlots(wh, day, duration, busy)
	return out, nil
}
