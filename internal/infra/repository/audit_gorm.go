package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/audit"
	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

// AuditGormRepository only reads; rows are written by the audit
// dispatcher.
type AuditGormRepository struct {
	db *gorm.DB
}

func NewAuditGormRepository(db *gorm.DB) *AuditGormRepository {
	return &AuditGormRepository{db: db}
}

func (r *AuditGormRepository) ListEvents(
	ctx context.Context,
	f domain.Filter,
) ([]models.AuditEventLog, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.AuditEventLog{})

	if f.Table != "" {
		q = q.Where("table_name = ?", f.Table)
	}
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.ActorID != "" {
		q = q.Where("actor_id = ?", f.ActorID)
	}
	if f.RecordID != "" {
		q = q.Where("record_id = ?", f.RecordID)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []models.AuditEventLog
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *AuditGormRepository) GetEvent(ctx context.Context, id uint) (*models.AuditEventLog, error) {
	var ev models.AuditEventLog
	if err := r.db.WithContext(ctx).First(&ev, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("audit_event_not_found")
		}
		return nil, err
	}
	return &ev, nil
}

func (r *AuditGormRepository) RecordHistory(
	ctx context.Context,
	table, recordID string,
) ([]models.AuditEventLog, error) {

	var events []models.AuditEventLog
	if err := r.db.WithContext(ctx).
		Where("table_name = ? AND record_id = ?", table, recordID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *AuditGormRepository) ListTables(ctx context.Context) ([]string, error) {
	var tables []string
	if err := r.db.WithContext(ctx).
		Model(&models.AuditEventLog{}).
		Distinct("table_name").
		Order("table_name").
		Pluck("table_name", &tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// Compile-time check
var _ domain.Repository = (*AuditGormRepository)(nil)
