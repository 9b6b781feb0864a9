package dto

import (
	"time"

	"github.com/BruksfildServices01/dental-clinic/internal/models"
)

// AppointmentListDTO adds clinic local date and time to the row, the
// shape calendar views group by.
type AppointmentListDTO struct {
	ID           uint      `json:"id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	DurationMin  int       `json:"duration_min"`
	Status       string    `json:"status"`
	PatientID    *uint     `json:"patient_id"`
	PatientName  string    `json:"patient_name"`
	PatientPhone string    `json:"patient_phone"`
	Reason       string    `json:"reason"`
}

func NewAppointmentListDTO(ap models.Appointment, loc *time.Location) AppointmentListDTO {
	start := ap.StartTime.In(loc)
	return AppointmentListDTO{
		ID:           ap.ID,
		StartTime:    ap.StartTime,
		EndTime:      ap.EndTime,
		Date:         start.Format("2006-01-02"),
		Time:         start.Format("15:04"),
		DurationMin:  int(ap.EndTime.Sub(ap.StartTime) / time.Minute),
		Status:       ap.Status,
		PatientID:    ap.PatientID,
		PatientName:  ap.PatientName,
		PatientPhone: ap.PatientPhone,
		Reason:       ap.Reason,
	}
}

func NewAppointmentList(apps []models.Appointment, loc *time.Location) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, NewAppointmentListDTO(ap, loc))
	}
	return out
}
