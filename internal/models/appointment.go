package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID    *uint    `gorm:"index" json:"patient_id"`
	Patient      *Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient,omitempty"`
	PatientName  string   `gorm:"size:150;not null" json:"patient_name"`
	PatientPhone string   `gorm:"size:20;not null" json:"patient_phone"`

	StartTime time.Time `gorm:"not null;index" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	Status string `gorm:"size:20;default:'Pending';index" json:"status"`

	Reason string `gorm:"size:255" json:"reason"`
	Notes  string `gorm:"type:text" json:"notes"`

	RescheduledFrom  *time.Time `json:"rescheduled_from"`
	RescheduleReason string     `gorm:"size:255" json:"reschedule_reason"`
	RescheduleCount  int        `gorm:"default:0" json:"reschedule_count"`

	CancellationReason string     `gorm:"size:255" json:"cancellation_reason"`
	CancelledAt        *time.Time `json:"cancelled_at"`
	CompletedAt        *time.Time `json:"completed_at"`

	CreatedBy string `gorm:"size:64" json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
