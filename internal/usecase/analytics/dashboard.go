package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/analytics"
	"github.com/BruksfildServices01/dental-clinic/internal/timezone"
)

// Dashboard serves the analytics endpoints. Every result is cached under
// a key that names the endpoint and its period.
type Dashboard struct {
	repo  domain.Repository
	cache domain.Cache
	ttl   time.Duration
	now   func() time.Time
}

func NewDashboard(repo domain.Repository, cache domain.Cache, ttl time.Duration) *Dashboard {
	return &Dashboard{repo: repo, cache: cache, ttl: ttl, now: timezone.Now}
}

// ==================================================
// Summary
// ==================================================

func (d *Dashboard) Summary(ctx context.Context) (domain.Summary, error) {
	now := d.now()
	today := timezone.StartOfDay(now)

	key := fmt.Sprintf("summary:%s", today.Format("2006-01-02"))

	return cached(ctx, d.cache, d.ttl, key, func() (domain.Summary, error) {
		var s domain.Summary
		var err error

		if s.TotalPatients, err = d.repo.CountPatients(ctx); err != nil {
			return s, err
		}
		if s.TotalVisits, err = d.repo.CountVisits(ctx); err != nil {
			return s, err
		}
		if s.AppointmentsToday, err = d.repo.CountBlockingAppointments(ctx, today, today.AddDate(0, 0, 1)); err != nil {
			return s, err
		}
		if s.UpcomingAppointments, err = d.repo.CountAppointmentsFrom(ctx, now); err != nil {
			return s, err
		}

		rev, err := d.repo.RevenueTotals(ctx)
		if err != nil {
			return s, err
		}
		s.RevenueBilled = roundCents(rev.Billed)
		s.RevenueCollected = roundCents(rev.Collected)
		s.RevenueOutstanding = roundCents(rev.Outstanding)

		return s, nil
	})
}

// ==================================================
// Per year
// ==================================================

func (d *Dashboard) Patients(ctx context.Context, year int) (domain.PatientStats, error) {
	year, err := resolveYear(year, d.now())
	if err != nil {
		return domain.PatientStats{}, err
	}
	start, end := yearBounds(year, d.now().Location())

	return cached(ctx, d.cache, d.ttl, fmt.Sprintf("patients:%d", year), func() (domain.PatientStats, error) {
		monthly, err := d.repo.PatientsByMonth(ctx, start, end)
		if err != nil {
			return domain.PatientStats{}, err
		}
		byGender, err := d.repo.PatientsByGender(ctx, start, end)
		if err != nil {
			return domain.PatientStats{}, err
		}

		filled := domain.FillMonths(monthly)
		return domain.PatientStats{
			Year:     year,
			Monthly:  filled,
			ByGender: domain.NormalizeLabels(byGender),
			Total:    domain.SumCounts(filled),
		}, nil
	})
}

func (d *Dashboard) Visits(ctx context.Context, year int) (domain.VisitStats, error) {
	year, err := resolveYear(year, d.now())
	if err != nil {
		return domain.VisitStats{}, err
	}
	start, end := yearBounds(year, d.now().Location())

	return cached(ctx, d.cache, d.ttl, fmt.Sprintf("visits:%d", year), func() (domain.VisitStats, error) {
		monthly, err := d.repo.VisitsByMonth(ctx, start, end)
		if err != nil {
			return domain.VisitStats{}, err
		}

		filled := domain.FillMonths(monthly)
		return domain.VisitStats{
			Year:    year,
			Monthly: filled,
			Total:   domain.SumCounts(filled),
		}, nil
	})
}

func (d *Dashboard) Appointments(ctx context.Context, year int) (domain.AppointmentStats, error) {
	year, err := resolveYear(year, d.now())
	if err != nil {
		return domain.AppointmentStats{}, err
	}
	start, end := yearBounds(year, d.now().Location())

	return cached(ctx, d.cache, d.ttl, fmt.Sprintf("appointments:%d", year), func() (domain.AppointmentStats, error) {
		monthly, err := d.repo.AppointmentsByMonth(ctx, start, end)
		if err != nil {
			return domain.AppointmentStats{}, err
		}
		byStatus, err := d.repo.AppointmentsByStatus(ctx, start, end)
		if err != nil {
			return domain.AppointmentStats{}, err
		}

		filled := domain.FillMonths(monthly)
		return domain.AppointmentStats{
			Year:     year,
			Monthly:  filled,
			ByStatus: domain.NormalizeLabels(byStatus),
			Total:    domain.SumCounts(filled),
		}, nil
	})
}

func (d *Dashboard) Revenue(ctx context.Context, year int) (domain.RevenueStats, error) {
	year, err := resolveYear(year, d.now())
	if err != nil {
		return domain.RevenueStats{}, err
	}
	start, end := yearBounds(year, d.now().Location())

	return cached(ctx, d.cache, d.ttl, fmt.Sprintf("revenue:%d", year), func() (domain.RevenueStats, error) {
		rows, err := d.repo.RevenueByMonth(ctx, start, end)
		if err != nil {
			return domain.RevenueStats{}, err
		}

		stats := domain.RevenueStats{Year: year, Monthly: domain.FillRevenueMonths(rows)}
		for i := range stats.Monthly {
			m := &stats.Monthly[i]
			m.Billed = roundCents(m.Billed)
			m.Collected = roundCents(m.Collected)
			m.Outstanding = roundCents(m.Outstanding)

			stats.Billed += m.Billed
			stats.Collected += m.Collected
			stats.Outstanding += m.Outstanding
		}
		stats.Billed = roundCents(stats.Billed)
		stats.Collected = roundCents(stats.Collected)
		stats.Outstanding = roundCents(stats.Outstanding)

		return stats, nil
	})
}

// Years lists the years with data, newest first. The current year is
// always present so the selector has a default.
func (d *Dashboard) Years(ctx context.Context) ([]int, error) {
	current := d.now().Year()

	return cached(ctx, d.cache, d.ttl, "years", func() ([]int, error) {
		years, err := d.repo.ActiveYears(ctx)
		if err != nil {
			return nil, err
		}

		out := []int{current}
		for _, y := range years {
			if y != current && y >= MinYear && y <= MaxYear {
				out = append(out, y)
			}
		}
		sort.Sort(sort.Reverse(sort.IntSlice(out)))
		return out, nil
	})
}
