package visit

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/visit"
	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

// VisitInput carries every editable field; update replaces them all.
type VisitInput struct {
	PatientID uint
	VisitDate string

	ChiefComplaint      string
	TriggerFactors      []string
	DurationOfComplaint string

	Findings      []models.ToothFinding
	Diagnosis     string
	TreatmentPlan string
	Procedures    []models.Procedure

	Dentist string
	Notes   string
}

// apply validates in, copies it onto v and recomputes the money columns.
// An empty VisitDate means today.
func apply(v *models.Visit, in VisitInput, today time.Time) error {
	date := strings.TrimSpace(in.VisitDate)
	if date == "" {
		date = today.Format("2006-01-02")
	}
	visitDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return httperr.ErrBusiness("invalid_visit_date")
	}

	if err := domain.ValidateFindings(in.Findings); err != nil {
		return err
	}

	findings := in.Findings
	if findings == nil {
		findings = []models.ToothFinding{}
	}
	procedures := in.Procedures
	if procedures == nil {
		procedures = []models.Procedure{}
	}

	v.VisitDate = visitDate
	v.ChiefComplaint = strings.TrimSpace(in.ChiefComplaint)
	v.TriggerFactors = cleanFactors(in.TriggerFactors)
	v.DurationOfComplaint = strings.TrimSpace(in.DurationOfComplaint)
	v.Findings = datatypes.JSONSlice[models.ToothFinding](findings)
	v.Diagnosis = strings.TrimSpace(in.Diagnosis)
	v.TreatmentPlan = strings.TrimSpace(in.TreatmentPlan)
	v.Procedures = datatypes.JSONSlice[models.Procedure](procedures)
	v.Dentist = strings.TrimSpace(in.Dentist)
	v.Notes = in.Notes

	return domain.Recalculate(v)
}

// cleanFactors trims, drops empty entries and duplicates, keeping order.
func cleanFactors(in []string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, f := range in {
		f = strings.TrimSpace(f)
		key := strings.ToLower(f)
		if f == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, f)
	}
	return out
}
