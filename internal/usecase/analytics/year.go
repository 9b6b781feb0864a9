package analytics

import (
	"math"
	"time"

	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
)

const (
	MinYear = 2000
	MaxYear = 2100
)

// resolveYear defaults 0 to the current year of now and rejects years
// outside MinYear..MaxYear.
func resolveYear(year int, now time.Time) (int, error) {
	if year == 0 {
		return now.Year(), nil
	}
	if year < MinYear || year > MaxYear {
		return 0, httperr.ErrBusiness("invalid_year")
	}
	return year, nil
}

// yearBounds is [Jan 1 year, Jan 1 year+1) in loc.
func yearBounds(year int, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(1, 0, 0)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
