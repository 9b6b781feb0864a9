package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

func TestParseStatus(t *testing.T) {
	cases := map[string]Status{
		"pending":     StatusPending,
		" Confirmed ": StatusConfirmed,
		"no_show":     StatusNoShow,
		"No Show":     StatusNoShow,
		"noshow":      StatusNoShow,
		"RESCHEDULED": StatusRescheduled,
	}
	for in, want := range cases {
		got, err := ParseStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseStatus("archived")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestCanTransition(t *testing.T) {
	assert.NoError(t, CanTransition(StatusPending, StatusConfirmed))
	assert.NoError(t, CanTransition(StatusConfirmed, StatusNoShow))
	assert.NoError(t, CanTransition(StatusRescheduled, StatusCompleted))

	assert.Error(t, CanTransition(StatusPending, StatusRescheduled))
	assert.Error(t, CanTransition(StatusCompleted, StatusCancelled))
	assert.Error(t, CanTransition(StatusCancelled, StatusConfirmed))
	assert.Error(t, CanTransition(StatusConfirmed, StatusPending))
}

func TestChangeStatus_SetsTimestamps(t *testing.T) {
	now := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusConfirmed)}
	require.NoError(t, ChangeStatus(ap, StatusCancelled, "patient ill", now))
	assert.Equal(t, "Cancelled", ap.Status)
	assert.Equal(t, "patient ill", ap.CancellationReason)
	require.NotNil(t, ap.CancelledAt)

	ap = &models.Appointment{Status: string(StatusPending)}
	require.NoError(t, ChangeStatus(ap, StatusCompleted, "", now))
	require.NotNil(t, ap.CompletedAt)
	assert.Equal(t, now, *ap.CompletedAt)

	err := ChangeStatus(ap, StatusConfirmed, "", now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestReschedule(t *testing.T) {
	oldStart := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	newStart := oldStart.Add(48 * time.Hour)

	ap := &models.Appointment{Status: string(StatusConfirmed), StartTime: oldStart, EndTime: oldStart.Add(30 * time.Minute)}
	require.NoError(t, Reschedule(ap, newStart, newStart.Add(30*time.Minute), "dentist away"))

	assert.Equal(t, "Rescheduled", ap.Status)
	assert.Equal(t, oldStart, *ap.RescheduledFrom)
	assert.Equal(t, 1, ap.RescheduleCount)
	assert.Equal(t, newStart, ap.StartTime)

	done := &models.Appointment{Status: string(StatusCompleted)}
	assert.Error(t, Reschedule(done, newStart, newStart, ""))
}

func day(h, m int) time.Time {
	return time.Date(2026, 4, 6, h, m, 0, 0, time.UTC)
}

func TestIsWithinWorkingHours(t *testing.T) {
	wh := &models.WorkingHours{Active: true, StartTime: "09:00", EndTime: "17:00", BreakStart: "12:00", BreakEnd: "13:00"}

	assert.True(t, IsWithinWorkingHours(wh, day(9, 0), day(9, 30)))
	assert.True(t, IsWithinWorkingHours(wh, day(11, 30), day(12, 0)))
	assert.False(t, IsWithinWorkingHours(wh, day(11, 45), day(12, 15)))
	assert.False(t, IsWithinWorkingHours(wh, day(8, 30), day(9, 0)))
	assert.False(t, IsWithinWorkingHours(wh, day(16, 45), day(17, 15)))
	assert.False(t, IsWithinWorkingHours(nil, day(10, 0), day(10, 30)))

	wh.Active = false
	assert.False(t, IsWithinWorkingHours(wh, day(10, 0), day(10, 30)))
}

func TestValidateWorkingDay(t *testing.T) {
	assert.True(t, ValidateWorkingDay(models.WorkingHours{Weekday: 1, Active: true, StartTime: "09:00", EndTime: "18:00"}))
	assert.True(t, ValidateWorkingDay(models.WorkingHours{Weekday: 0, Active: false}))
	assert.True(t, ValidateWorkingDay(models.WorkingHours{Weekday: 2, Active: true, StartTime: "09:00", EndTime: "18:00", BreakStart: "12:00", BreakEnd: "13:00"}))

	assert.False(t, ValidateWorkingDay(models.WorkingHours{Weekday: 7}))
	assert.False(t, ValidateWorkingDay(models.WorkingHours{Weekday: 1, Active: true, StartTime: "18:00", EndTime: "09:00"}))
	assert.False(t, ValidateWorkingDay(models.WorkingHours{Weekday: 1, Active: true, StartTime: "09:00", EndTime: "18:00", BreakStart: "12:00"}))
	assert.False(t, ValidateWorkingDay(models.WorkingHours{Weekday: 1, Active: true, StartTime: "09:00", EndTime: "18:00", BreakStart: "08:00", BreakEnd: "10:00"}))
}

func TestBuildSlots(t *testing.T) {
	wh := &models.WorkingHours{Active: true, StartTime: "09:00", EndTime: "12:00", BreakStart: "10:00", BreakEnd: "10:30"}
	busy := []models.Appointment{
		{StartTime: day(9, 30), EndTime: day(10, 0)},
		{StartTime: day(11, 0), EndTime: day(11, 45)},
	}

	slots := BuildSlots(wh, day(0, 0), 30*time.Minute, busy)

	assert.Equal(t, []TimeSlot{
		{Start: "09:00", End: "09:30"},
		{Start: "10:30", End: "11:00"},
	}, slots)
}

func TestBuildSlots_ClosedDay(t *testing.T) {
	assert.Empty(t, BuildSlots(&models.WorkingHours{Active: false}, day(0, 0), 30*time.Minute, nil))
	assert.Empty(t, BuildSlots(nil, day(0, 0), 30*time.Minute, nil))
	assert.NotNil(t, BuildSlots(nil, day(0, 0), 30*time.Minute, nil))
}

func TestBookedSlots(t *testing.T) {
	busy := []models.Appointment{{StartTime: day(9, 0), EndTime: day(9, 45)}}
	assert.Equal(t, []TimeSlot{{Start: "09:00", End: "09:45"}}, BookedSlots(busy, time.UTC))
}
