package analytics

import (
	"context"
	"time"
)

// Repository runs the GROUP BY queries. Periods are [start, end).
type Repository interface {
	CountPatients(ctx context.Context) (int64, error)
	CountVisits(ctx context.Context) (int64, error)
	CountBlockingAppointments(ctx context.Context, start, end time.Time) (int64, error)
	CountAppointmentsFrom(ctx context.Context, from time.Time) (int64, error)
	RevenueTotals(ctx context.Context) (MonthlyRevenue, error)

	PatientsByMonth(ctx context.Context, start, end time.Time) ([]MonthlyCount, error)
	PatientsByGender(ctx context.Context, start, end time.Time) ([]LabelCount, error)
	VisitsByMonth(ctx context.Context, start, end time.Time) ([]MonthlyCount, error)
	AppointmentsByMonth(ctx context.Context, start, end time.Time) ([]MonthlyCount, error)
	AppointmentsByStatus(ctx context.Context, start, end time.Time) ([]LabelCount, error)
	RevenueByMonth(ctx context.Context, start, end time.Time) ([]MonthlyRevenue, error)

	ActiveYears(ctx context.Context) ([]int, error)
}

// Cache stores serialized results by key.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Invalidate(ctx context.Context)
}

// Invalidator is what write paths need from the cache.
type Invalidator interface {
	Invalidate(ctx context.Context)
}
