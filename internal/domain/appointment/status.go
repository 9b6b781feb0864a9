package appointment

import (
	"strings"

	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending     Status = "Pending"
	StatusConfirmed   Status = "Confirmed"
	StatusCancelled   Status = "Cancelled"
	StatusCompleted   Status = "Completed"
	StatusNoShow      Status = "No Show"
	StatusRescheduled Status = "Rescheduled"
)

var AllStatuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
	StatusNoShow,
	StatusRescheduled,
}

// Rescheduled is only reachable through Reschedule.
var transitions = map[Status][]Status{
	StatusPending:     {StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow},
	StatusConfirmed:   {StatusCompleted, StatusCancelled, StatusNoShow},
	StatusRescheduled: {StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow},
}

// BlockingStatuses hold their slot.
var BlockingStatuses = []string{
	string(StatusPending),
	string(StatusConfirmed),
	string(StatusRescheduled),
}

// ===============================
// Validations
// ===============================

// ParseStatus accepts any casing and "no_show"/"noshow" spellings.
func ParseStatus(raw string) (Status, error) {
	norm := strings.ToLower(strings.TrimSpace(raw))
	norm = strings.NewReplacer("_", " ", "-", " ").Replace(norm)
	if norm == "noshow" {
		norm = "no show"
	}

	for _, s := range AllStatuses {
		if strings.ToLower(string(s)) == norm {
			return s, nil
		}
	}
	return "", httperr.ErrBusiness("invalid_status")
}

func (s Status) IsBlocking() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusRescheduled
}

func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_state")
}

func CanReschedule(current Status) error {
	if !current.IsBlocking() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
