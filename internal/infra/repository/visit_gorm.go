package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/visit"
	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

type VisitGormRepository struct {
	db *gorm.DB
}

func NewVisitGormRepository(db *gorm.DB) *VisitGormRepository {
	return &VisitGormRepository{db: db}
}

func (r *VisitGormRepository) PatientExists(ctx context.Context, patientID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Patient{}).
		Where("id = ?", patientID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *VisitGormRepository) CreateVisit(ctx context.Context, v *models.Visit) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(v).Error
	if httperr.IsForeignKeyViolation(err) {
		return httperr.ErrBusiness("patient_not_found")
	}
	return err
}

func (r *VisitGormRepository) GetVisit(ctx context.Context, id uint) (*models.Visit, error) {
	var v models.Visit
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("visit_not_found")
		}
		return nil, err
	}
	return &v, nil
}

func (r *VisitGormRepository) UpdateVisit(ctx context.Context, v *models.Visit) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(v).Error
}

func (r *VisitGormRepository) DeleteVisit(ctx context.Context, v *models.Visit) error {
	return r.db.WithContext(ctx).Delete(v).Error
}

func (r *VisitGormRepository) ListVisits(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Visit, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Visit{})

	if f.PatientID != 0 {
		q = q.Where("patient_id = ?", f.PatientID)
	}
	if f.From != nil {
		q = q.Where("visit_date >= ?", dateOnly(*f.From))
	}
	if f.To != nil {
		q = q.Where("visit_date < ?", dateOnly(*f.To))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var visits []models.Visit
	if err := q.
		Order("visit_date DESC").
		Order("id DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&visits).Error; err != nil {
		return nil, 0, err
	}
	return visits, total, nil
}

// Compile-time check
var _ domain.Repository = (*VisitGormRepository)(nil)
