package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

func TestNewAppointmentList(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	start := time.Date(2024, 5, 10, 12, 30, 0, 0, time.UTC)

	out := NewAppointmentList([]models.Appointment{{
		ID:          1,
		StartTime:   start,
		EndTime:     start.Add(45 * time.Minute),
		Status:      "Pending",
		PatientName: "Ana",
	}}, loc)

	assert.Len(t, out, 1)
	assert.Equal(t, "2024-05-10", out[0].Date)
	assert.Equal(t, "09:30", out[0].Time)
	assert.Equal(t, 45, out[0].DurationMin)

	assert.NotNil(t, NewAppointmentList(nil, loc))
}
