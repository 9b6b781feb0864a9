package appointment

import (
	"context"
	"sort"
	"time"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

type fakeRepo struct {
	apps   map[uint]*models.Appointment
	hours  map[int]*models.WorkingHours
	nextID uint

	updated int
	deleted []uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		apps:   map[uint]*models.Appointment{},
		hours:  map[int]*models.WorkingHours{},
		nextID: 1,
	}
}

func (f *fakeRepo) add(ap models.Appointment) *models.Appointment {
	ap.ID = f.nextID
	f.nextID++
	f.apps[ap.ID] = &ap
	return &ap
}

func (f *fakeRepo) overlaps(start, end time.Time, exclude uint) bool {
	for _, ap := range f.apps {
		if ap.ID == exclude || !domain.Status(ap.Status).IsBlocking() {
			continue
		}
		if ap.StartTime.Before(end) && ap.EndTime.After(start) {
			return true
		}
	}
	return false
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.overlaps(ap.StartTime, ap.EndTime, 0) {
		return httperr.ErrBusiness("time_conflict")
	}
	ap.ID = f.nextID
	f.nextID++
	cp := *ap
	f.apps[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.apps[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.updated++
	cp := *ap
	f.apps[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) RescheduleAppointment(_ context.Context, ap *models.Appointment) error {
	if f.overlaps(ap.StartTime, ap.EndTime, ap.ID) {
		return httperr.ErrBusiness("time_conflict")
	}
	return f.UpdateAppointment(context.Background(), ap)
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, ap *models.Appointment) error {
	delete(f.apps, ap.ID)
	f.deleted = append(f.deleted, ap.ID)
	return nil
}

func (f *fakeRepo) GetWorkingHours(_ context.Context, weekday int) (*models.WorkingHours, error) {
	return f.hours[weekday], nil
}

func (f *fakeRepo) HasWorkingHours(context.Context) (bool, error) {
	return len(f.hours) > 0, nil
}

func (f *fakeRepo) ListBlockingForPeriod(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.apps {
		if domain.Status(ap.Status).IsBlocking() && ap.StartTime.Before(end) && ap.EndTime.After(start) {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.apps {
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f *fakeRepo) SearchAppointments(_ context.Context, sf domain.SearchFilter) ([]models.Appointment, int64, error) {
	var out []models.Appointment
	for _, ap := range f.apps {
		if sf.Status == "" || ap.Status == sf.Status {
			out = append(out, *ap)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) ListUpcoming(_ context.Context, from time.Time, limit int) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.apps {
		if domain.Status(ap.Status).IsBlocking() && !ap.StartTime.Before(from) {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeCache struct {
	invalidated int
}

func (c *fakeCache) Invalidate(context.Context) { c.invalidated++ }

type fakeHoursRepo struct {
	days     []models.WorkingHours
	replaced []models.WorkingHours
}

func (f *fakeHoursRepo) ListWorkingHours(context.Context) ([]models.WorkingHours, error) {
	return f.days, nil
}

func (f *fakeHoursRepo) ReplaceWorkingHours(_ context.Context, days []models.WorkingHours) error {
	f.replaced = days
	return nil
}
