package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/patient"
	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

type PatientGormRepository struct {
	db *gorm.DB
}

func NewPatientGormRepository(db *gorm.DB) *PatientGormRepository {
	return &PatientGormRepository{db: db}
}

// --------------------------------------------------
// Patient
// --------------------------------------------------

func (r *PatientGormRepository) CreatePatient(ctx context.Context, p *models.Patient) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *PatientGormRepository) GetPatient(ctx context.Context, id uint) (*models.Patient, error) {
	var p models.Patient
	if err := r.db.WithContext(ctx).
		Preload("MedicalHistory").
		First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("patient_not_found")
		}
		return nil, err
	}
	return &p, nil
}

func (r *PatientGormRepository) UpdatePatient(ctx context.Context, p *models.Patient) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error
}

// DeletePatient removes the patient's visits and medical history and
// unlinks their appointments row by row, so each change is captured by
// the audit callbacks, then deletes the patient. Appointments keep their
// copy of name and phone.
func (r *PatientGormRepository) DeletePatient(ctx context.Context, p *models.Patient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var visits []models.Visit
		if err := tx.Where("patient_id = ?", p.ID).Find(&visits).Error; err != nil {
			return err
		}
		for i := range visits {
			if err := tx.Delete(&visits[i]).Error; err != nil {
				return err
			}
		}

		var mh models.MedicalHistory
		err := tx.Where("patient_id = ?", p.ID).First(&mh).Error
		switch {
		case err == nil:
			if err := tx.Delete(&mh).Error; err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		var apps []models.Appointment
		if err := tx.Where("patient_id = ?", p.ID).Find(&apps).Error; err != nil {
			return err
		}
		for i := range apps {
			if err := tx.Model(&apps[i]).
				Omit(clause.Associations).
				Update("patient_id", nil).Error; err != nil {
				return err
			}
		}

		return tx.Omit(clause.Associations).Delete(p).Error
	})
}

func (r *PatientGormRepository) ListPatients(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Patient, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Patient{})

	if term := strings.TrimSpace(f.Query); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}
	if f.Gender != "" {
		q = q.Where("gender = ?", f.Gender)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var patients []models.Patient
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&patients).Error; err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}

// --------------------------------------------------
// Medical history
// --------------------------------------------------

func (r *PatientGormRepository) GetMedicalHistory(
	ctx context.Context,
	patientID uint,
) (*models.MedicalHistory, error) {

	var mh models.MedicalHistory
	if err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		First(&mh).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("medical_history_not_found")
		}
		return nil, err
	}
	return &mh, nil
}

// UpsertMedicalHistory replaces the patient's row, or inserts it when
// there is none. A concurrent insert losing the unique index race is
// retried as an update.
func (r *PatientGormRepository) UpsertMedicalHistory(
	ctx context.Context,
	mh *models.MedicalHistory,
) error {

	err := r.upsertMedicalHistory(ctx, mh)
	if httperr.IsUniqueViolation(err) {
		err = r.upsertMedicalHistory(ctx, mh)
	}
	return err
}

func (r *PatientGormRepository) upsertMedicalHistory(
	ctx context.Context,
	mh *models.MedicalHistory,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.MedicalHistory
		err := tx.Where("patient_id = ?", mh.PatientID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			mh.ID = 0
			return tx.Create(mh).Error
		case err != nil:
			return err
		}

		mh.ID = existing.ID
		mh.CreatedAt = existing.CreatedAt
		return tx.Save(mh).Error
	})
}

// Compile-time check
var _ domain.Repository = (*PatientGormRepository)(nil)
