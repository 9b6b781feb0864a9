package validators

import (
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"
)

var genders = map[string]bool{"male": true, "female": true, "other": true}

var bloodGroups = map[string]bool{
	"A+": true, "A-": true, "B+": true, "B-": true,
	"AB+": true, "AB-": true, "O+": true, "O-": true,
}

func IsGender(g string) bool { return genders[g] }

func IsBloodGroup(g string) bool { return bloodGroups[g] }

func IsHHMM(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil && len(s) == 5
}

func IsDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// Register adds the clinic specific tags to gin's validator engine:
// hhmm, date, gender, blood_group, phone, appointment_status. Field
// errors are reported under their json names. Blank values pass date,
// gender and blood_group; they clear the field.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	v.RegisterTagNameFunc(jsonName)

	rules := map[string]func(string) bool{
		"hhmm": IsHHMM,
		"date": func(s string) bool {
			s = strings.TrimSpace(s)
			return s == "" || IsDate(s)
		},
		"gender": func(s string) bool {
			s = strings.ToLower(strings.TrimSpace(s))
			return s == "" || IsGender(s)
		},
		"blood_group": func(s string) bool {
			s = strings.ToUpper(strings.TrimSpace(s))
			return s == "" || IsBloodGroup(s)
		},
		"phone": func(s string) bool { return NormalizePhone(s) != "" },

		"appointment_status": func(s string) bool {
			_, err := appointment.ParseStatus(s)
			return err == nil
		},
	}

	for tag, fn := range rules {
		fn := fn
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		}); err != nil {
			return err
		}
	}
	return nil
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}
