package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/analytics"
	appointment "github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
	"github.com/BruksfildServices01/dental-clinic/internal/timezone"
)

// AnalyticsGormRepository runs the aggregations in Postgres. Timestamps
// are bucketed in the clinic timezone; visit dates are plain dates.
type AnalyticsGormRepository struct {
	db *gorm.DB
}

func NewAnalyticsGormRepository(db *gorm.DB) *AnalyticsGormRepository {
	return &AnalyticsGormRepository{db: db}
}

func (r *AnalyticsGormRepository) tz() string {
	return timezone.Clinic()
}

// --------------------------------------------------
// Totals
// --------------------------------------------------

func (r *AnalyticsGormRepository) CountPatients(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Patient{}).Count(&n).Error
	return n, err
}

func (r *AnalyticsGormRepository) CountVisits(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Visit{}).Count(&n).Error
	return n, err
}

func (r *AnalyticsGormRepository) CountBlockingAppointments(
	ctx context.Context,
	start, end time.Time,
) (int64, error) {

	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"status IN ? AND start_time >= ? AND start_time < ?",
			appointment.BlockingStatuses, start, end,
		).
		Count(&n).Error
	return n, err
}

func (r *AnalyticsGormRepository) CountAppointmentsFrom(ctx context.Context, from time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("status IN ? AND start_time >= ?", appointment.BlockingStatuses, from).
		Count(&n).Error
	return n, err
}

func (r *AnalyticsGormRepository) RevenueTotals(ctx context.Context) (domain.MonthlyRevenue, error) {
	var out domain.MonthlyRevenue
	err := r.db.WithContext(ctx).
		Model(&models.Visit{}).
		Select(
			"COALESCE(SUM(total_amount), 0) AS billed, " +
				"COALESCE(SUM(paid_amount), 0) AS collected, " +
				"COALESCE(SUM(due_amount), 0) AS outstanding",
		).
		Scan(&out).Error
	return out, err
}

// --------------------------------------------------
// Per month / per label
// --------------------------------------------------

func (r *AnalyticsGormRepository) PatientsByMonth(
	ctx context.Context,
	start, end time.Time,
) ([]domain.MonthlyCount, error) {

	var rows []domain.MonthlyCount
	err := r.db.WithContext(ctx).
		Model(&models.Patient{}).
		Select("CAST(EXTRACT(MONTH FROM created_at AT TIME ZONE ?) AS INTEGER) AS month, COUNT(*) AS count", r.tz()).
		Where("created_at >= ? AND created_at < ?", start, end).
		Group("month").
		Order("month").
		Scan(&rows).Error
	return rows, err
}

func (r *AnalyticsGormRepository) PatientsByGender(
	ctx context.Context,
	start, end time.Time,
) ([]domain.LabelCount, error) {

	var rows []domain.LabelCount
	err := r.db.WithContext(ctx).
		Model(&models.Patient{}).
		Select("COALESCE(gender, '') AS label, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", start, end).
		Group("label").
		Scan(&rows).Error
	return rows, err
}

func (r *AnalyticsGormRepository) VisitsByMonth(
	ctx context.Context,
	start, end time.Time,
) ([]domain.MonthlyCount, error) {

	var rows []domain.MonthlyCount
	err := r.db.WithContext(ctx).
		Model(&models.Visit{}).
		Select("CAST(EXTRACT(MONTH FROM visit_date) AS INTEGER) AS month, COUNT(*) AS count").
		Where("visit_date >= ? AND visit_date < ?", dateOnly(start), dateOnly(end)).
		Group("month").
		Order("month").
		Scan(&rows).Error
	return rows, err
}

func (r *AnalyticsGormRepository) AppointmentsByMonth(
	ctx context.Context,
	start, end time.Time,
) ([]domain.MonthlyCount, error) {

	var rows []domain.MonthlyCount
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("CAST(EXTRACT(MONTH FROM start_time AT TIME ZONE ?) AS INTEGER) AS month, COUNT(*) AS count", r.tz()).
		Where("start_time >= ? AND start_time < ?", start, end).
		Group("month").
		Order("month").
		Scan(&rows).Error
	return rows, err
}

func (r *AnalyticsGormRepository) AppointmentsByStatus(
	ctx context.Context,
	start, end time.Time,
) ([]domain.LabelCount, error) {

	var rows []domain.LabelCount
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("status AS label, COUNT(*) AS count").
		Where("start_time >= ? AND start_time < ?", start, end).
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *AnalyticsGormRepository) RevenueByMonth(
	ctx context.Context,
	start, end time.Time,
) ([]domain.MonthlyRevenue, error) {

	var rows []domain.MonthlyRevenue
	err := r.db.WithContext(ctx).
		Model(&models.Visit{}).
		Select(
			"CAST(EXTRACT(MONTH FROM visit_date) AS INTEGER) AS month, "+
				"COALESCE(SUM(total_amount), 0) AS billed, "+
				"COALESCE(SUM(paid_amount), 0) AS collected, "+
				"COALESCE(SUM(due_amount), 0) AS outstanding",
		).
		Where("visit_date >= ? AND visit_date < ?", dateOnly(start), dateOnly(end)).
		Group("month").
		Order("month").
		Scan(&rows).Error
	return rows, err
}

// ActiveYears lists, newest first, the years that have any patient,
// visit or appointment.
func (r *AnalyticsGormRepository) ActiveYears(ctx context.Context) ([]int, error) {
	var years []int
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT y FROM (
			SELECT CAST(EXTRACT(YEAR FROM created_at AT TIME ZONE ?) AS INTEGER) AS y FROM patients
			UNION
			SELECT CAST(EXTRACT(YEAR FROM visit_date) AS INTEGER) FROM visits
			UNION
			SELECT CAST(EXTRACT(YEAR FROM start_time AT TIME ZONE ?) AS INTEGER) FROM appointments
		) AS active
		WHERE y IS NOT NULL
		ORDER BY y DESC`,
		r.tz(), r.tz(),
	).Scan(&years).Error
	return years, err
}

func dateOnly(t time.Time) string {
	return t.Format("2006-01-02")
}

// Compile-time check
var _ domain.Repository = (*AnalyticsGormRepository)(nil)
