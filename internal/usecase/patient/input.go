package patient

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
	"github.com/BruksfildServices01/dental-clinic/internal/validators"
)

// PatientInput holds the editable fields. Nil means "leave as is" on
// update; on create Name and Phone are required.
type PatientInput struct {
	Name             *string
	DateOfBirth      *string
	Gender           *string
	Phone            *string
	Email            *string
	Address          *string
	Occupation       *string
	BloodGroup       *string
	EmergencyContact *models.EmergencyContact
	Notes            *string
}

func trimmed(s *string) string {
	return strings.TrimSpace(*s)
}

// apply validates in and copies it onto p.
func apply(p *models.Patient, in PatientInput, today time.Time) error {
	if in.Name != nil {
		name := trimmed(in.Name)
		if name == "" {
			return httperr.ErrBusiness("invalid_name")
		}
		p.Name = name
	}

	if in.Phone != nil {
		phone := validators.NormalizePhone(*in.Phone)
		if phone == "" {
			return httperr.ErrBusiness("invalid_phone")
		}
		p.Phone = phone
	}

	if in.DateOfBirth != nil {
		raw := trimmed(in.DateOfBirth)
		if raw == "" {
			p.DateOfBirth = nil
		} else {
			dob, err := time.Parse("2006-01-02", raw)
			if err != nil || dob.After(today) {
				return httperr.ErrBusiness("invalid_date_of_birth")
			}
			p.DateOfBirth = &dob
		}
	}

	if in.Gender != nil {
		g := strings.ToLower(trimmed(in.Gender))
		if g != "" && !validators.IsGender(g) {
			return httperr.ErrBusiness("invalid_gender")
		}
		p.Gender = g
	}

	if in.Email != nil {
		email := strings.ToLower(trimmed(in.Email))
		if email != "" && !validators.IsEmail(email) {
			return httperr.ErrBusiness("invalid_email")
		}
		p.Email = email
	}

	if in.BloodGroup != nil {
		bg := strings.ToUpper(trimmed(in.BloodGroup))
		if bg != "" && !validators.IsBloodGroup(bg) {
			return httperr.ErrBusiness("invalid_blood_group")
		}
		p.BloodGroup = bg
	}

	if in.Address != nil {
		p.Address = trimmed(in.Address)
	}
	if in.Occupation != nil {
		p.Occupation = trimmed(in.Occupation)
	}
	if in.Notes != nil {
		p.Notes = *in.Notes
	}

	if in.EmergencyContact != nil {
		ec := *in.EmergencyContact
		ec.Name = strings.TrimSpace(ec.Name)
		ec.Relation = strings.TrimSpace(ec.Relation)
		if ec.Phone != "" {
			ec.Phone = validators.NormalizePhone(ec.Phone)
			if ec.Phone == "" {
				return httperr.ErrBusiness("invalid_emergency_contact")
			}
		}
		p.EmergencyContact = datatypes.NewJSONType(ec)
	}

	return nil
}
