package appointment

import (
	"time"

	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

func atClock(day time.Time, hm string) (time.Time, bool) {
	if hm == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	), true
}

// IsWithinWorkingHours checks [start, end) against the day's hours and
// break. start carries the clinic location.
func IsWithinWorkingHours(wh *models.WorkingHours, start, end time.Time) bool {
	if wh == nil || !wh.Active {
		return false
	}

	workStart, ok1 := atClock(start, wh.StartTime)
	workEnd, ok2 := atClock(start, wh.EndTime)
	if !ok1 || !ok2 {
		return false
	}

	if start.Before(workStart) || end.After(workEnd) {
		return false
	}

	breakStart, ok1 := atClock(start, wh.BreakStart)
	breakEnd, ok2 := atClock(start, wh.BreakEnd)
	if ok1 && ok2 && start.Before(breakEnd) && end.After(breakStart) {
		return false
	}

	return true
}

// ValidateWorkingDay checks the clock fields of an active day.
func ValidateWorkingDay(wh models.WorkingHours) bool {
	if wh.Weekday < 0 || wh.Weekday > 6 {
		return false
	}
	if !wh.Active {
		return true
	}

	day := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	start, ok1 := atClock(day, wh.StartTime)
	end, ok2 := atClock(day, wh.EndTime)
	if !ok1 || !ok2 || !start.Before(end) {
		return false
	}

	if wh.BreakStart == "" && wh.BreakEnd == "" {
		return true
	}
	bs, ok1 := atClock(day, wh.BreakStart)
	be, ok2 := atClock(day, wh.BreakEnd)
	return ok1 && ok2 && bs.Before(be) && !bs.Before(start) && !be.After(end)
}
