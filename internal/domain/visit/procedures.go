package visit

import (
	"math"
	"strings"

	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Recalculate sets due = total - paid on every procedure and the visit
// money columns to their sums.
func Recalculate(v *models.Visit) error {
	var total, paid, due float64

	for i := range v.Procedures {
		p := &v.Procedures[i]
		p.Procedure = strings.TrimSpace(p.Procedure)
		if p.Procedure == "" {
			return httperr.ErrBusiness("invalid_procedure")
		}
		if p.Total < 0 || p.Paid < 0 {
			return httperr.ErrBusiness("negative_amount")
		}

		p.Total = roundCents(p.Total)
		p.Paid = roundCents(p.Paid)
		if p.Paid > p.Total {
			return httperr.ErrBusiness("paid_exceeds_total")
		}
		p.Due = roundCents(p.Total - p.Paid)
		if p.Dates == nil {
			p.Dates = []string{}
		}

		total += p.Total
		paid += p.Paid
		due += p.Due
	}

	v.TotalAmount = roundCents(total)
	v.PaidAmount = roundCents(paid)
	v.DueAmount = roundCents(due)
	return nil
}

// IsValidTooth accepts FDI numbers: permanent 11-48, primary 51-85.
func IsValidTooth(n int) bool {
	quadrant, pos := n/10, n%10
	switch {
	case quadrant >= 1 && quadrant <= 4:
		return pos >= 1 && pos <= 8
	case quadrant >= 5 && quadrant <= 8:
		return pos >= 1 && pos <= 5
	}
	return false
}

func ValidateFindings(findings []models.ToothFinding) error {
	seen := make(map[int]bool, len(findings))
	for _, f := range findings {
		if !IsValidTooth(f.Tooth) {
			return httperr.ErrBusiness("invalid_tooth")
		}
		if seen[f.Tooth] {
			return httperr.ErrBusiness("duplicate_tooth")
		}
		seen[f.Tooth] = true
	}
	return nil
}
