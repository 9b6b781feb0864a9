package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
	"github.com/BruksfildServices01/dental-clinic/internal/timezone"
)

const (
	minDurationMin = 5
	maxDurationMin = 8 * 60
)

// Settings are the clinic scheduling rules.
type Settings struct {
	SlotMinutes       int
	MinAdvanceMinutes int
}

func (s Settings) slot() time.Duration {
	if s.SlotMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(s.SlotMinutes) * time.Minute
}

func (s Settings) duration(minutes int) (time.Duration, error) {
	if minutes == 0 {
		return s.slot(), nil
	}
	if minutes < minDurationMin || minutes > maxDurationMin {
		return 0, httperr.ErrBusiness("invalid_duration")
	}
	return time.Duration(minutes) * time.Minute, nil
}

// slotChecker applies the rules shared by create and reschedule, in
// order: parseable date and time, minimum advance, working hours.
type slotChecker struct {
	repo     domain.Repository
	settings Settings
	now      func() time.Time
}

func (sc slotChecker) check(
	ctx context.Context,
	date, hm string,
	duration time.Duration,
) (time.Time, time.Time, error) {

	start, err := timezone.ParseDateTime(date, hm)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	end := start.Add(duration)

	minAdvance := time.Duration(sc.settings.MinAdvanceMinutes) * time.Minute
	if start.Before(sc.now().Add(minAdvance)) {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("too_soon")
	}

	configured, err := sc.repo.HasWorkingHours(ctx)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if configured {
		wh, err := sc.repo.GetWorkingHours(ctx, int(start.Weekday()))
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if !domain.IsWithinWorkingHours(wh, start, end) {
			return time.Time{}, time.Time{}, httperr.ErrBusiness("outside_working_hours")
		}
	}

	return start, end, nil
}
