package timezone

import (
	"sync/atomic"
	"time"
)

const DefaultTimezone = "UTC"

var clinicTimezone atomic.Value

func init() {
	clinicTimezone.Store(DefaultTimezone)
}

// SetClinic sets the timezone used for dates without an explicit zone.
// Invalid names are ignored.
func SetClinic(tz string) {
	if IsValid(tz) {
		clinicTimezone.Store(tz)
	}
}

func Clinic() string {
	return clinicTimezone.Load().(string)
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(Clinic())
	if err != nil {
		return time.UTC
	}
	return loc
}

func ClinicLocation() *time.Location {
	return Location(Clinic())
}

func Now() time.Time {
	return time.Now().In(ClinicLocation())
}

// ParseDate parses YYYY-MM-DD at midnight in the clinic timezone.
func ParseDate(date string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", date, ClinicLocation())
}

// ParseDateTime parses YYYY-MM-DD and HH:MM in the clinic timezone.
func ParseDateTime(date, hm string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+hm, ClinicLocation())
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
