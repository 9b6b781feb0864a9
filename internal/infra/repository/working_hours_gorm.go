package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

type WorkingHoursGormRepository struct {
	db *gorm.DB
}

func NewWorkingHoursGormRepository(db *gorm.DB) *WorkingHoursGormRepository {
	return &WorkingHoursGormRepository{db: db}
}

func (r *WorkingHoursGormRepository) ListWorkingHours(ctx context.Context) ([]models.WorkingHours, error) {
	var days []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Order("weekday ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

// ReplaceWorkingHours upserts the given weekdays and removes the ones
// not present, in one transaction.
func (r *WorkingHoursGormRepository) ReplaceWorkingHours(
	ctx context.Context,
	days []models.WorkingHours,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []models.WorkingHours
		if err := tx.Find(&existing).Error; err != nil {
			return err
		}

		byWeekday := make(map[int]models.WorkingHours, len(existing))
		for _, wh := range existing {
			byWeekday[wh.Weekday] = wh
		}

		keep := make(map[int]bool, len(days))
		for i := range days {
			day := &days[i]
			keep[day.Weekday] = true

			if cur, ok := byWeekday[day.Weekday]; ok {
				day.ID = cur.ID
				day.CreatedAt = cur.CreatedAt
				if err := tx.Save(day).Error; err != nil {
					return err
				}
				continue
			}
			day.ID = 0
			if err := tx.Create(day).Error; err != nil {
				return err
			}
		}

		for _, wh := range existing {
			if keep[wh.Weekday] {
				continue
			}
			stale := wh
			if err := tx.Delete(&stale).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Compile-time check
var _ domain.WorkingHoursRepository = (*WorkingHoursGormRepository)(nil)
