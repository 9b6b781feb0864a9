package appointment

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
	"github.com/BruksfildServices01/dental-clinic/internal/validators"
)

// UpdateAppointmentInput changes only the fields that are set. Time and
// status have their own operations.
type UpdateAppointmentInput struct {
	PatientID    *uint
	PatientName  *string
	PatientPhone *string
	Reason       *string
	Notes        *string
}

type UpdateAppointment struct {
	repo domain.Repository
}

func NewUpdateAppointment(repo domain.Repository) *UpdateAppointment {
	return &UpdateAppointment{repo: repo}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if in.PatientID != nil {
		if *in.PatientID == 0 {
			ap.PatientID = nil
		} else {
			id := *in.PatientID
			ap.PatientID = &id
		}
		ap.Patient = nil
	}
	if in.PatientName != nil {
		name := strings.TrimSpace(*in.PatientName)
		if name == "" {
			return nil, httperr.ErrBusiness("invalid_name")
		}
		ap.PatientName = name
	}
	if in.PatientPhone != nil {
		phone := validators.NormalizePhone(*in.PatientPhone)
		if phone == "" {
			return nil, httperr.ErrBusiness("invalid_phone")
		}
		ap.PatientPhone = phone
	}
	if in.Reason != nil {
		ap.Reason = strings.TrimSpace(*in.Reason)
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}
	return ap, nil
}
