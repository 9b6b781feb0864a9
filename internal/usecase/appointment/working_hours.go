package appointment

import (
	"context"
	"sort"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

type GetWorkingHours struct {
	repo domain.WorkingHoursRepository
}

func NewGetWorkingHours(repo domain.WorkingHoursRepository) *GetWorkingHours {
	return &GetWorkingHours{repo: repo}
}

// Execute always returns seven days, Sunday first; days never
// configured come back inactive.
func (uc *GetWorkingHours) Execute(ctx context.Context) ([]models.WorkingHours, error) {
	stored, err := uc.repo.ListWorkingHours(ctx)
	if err != nil {
		return nil, err
	}

	week := make([]models.WorkingHours, 7)
	for i := range week {
		week[i].Weekday = i
	}
	for _, wh := range stored {
		if wh.Weekday >= 0 && wh.Weekday <= 6 {
			week[wh.Weekday] = wh
		}
	}
	return week, nil
}

type UpdateWorkingHours struct {
	repo domain.WorkingHoursRepository
}

func NewUpdateWorkingHours(repo domain.WorkingHoursRepository) *UpdateWorkingHours {
	return &UpdateWorkingHours{repo: repo}
}

// Execute replaces the whole week. Weekdays must be unique.
func (uc *UpdateWorkingHours) Execute(
	ctx context.Context,
	days []models.WorkingHours,
) ([]models.WorkingHours, error) {

	seen := map[int]bool{}
	for i := range days {
		d := &days[i]
		if !domain.ValidateWorkingDay(*d) {
			return nil, httperr.ErrBusiness("invalid_working_hours")
		}
		if seen[d.Weekday] {
			return nil, httperr.ErrBusiness("duplicate_weekday")
		}
		seen[d.Weekday] = true

		if d.BreakStart == "" || d.BreakEnd == "" {
			d.BreakStart, d.BreakEnd = "", ""
		}
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Weekday < days[j].Weekday })

	if err := uc.repo.ReplaceWorkingHours(ctx, days); err != nil {
		return nil, err
	}
	return days, nil
}
