package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// ToothFinding uses FDI tooth numbering.
type ToothFinding struct {
	Tooth  int    `json:"tooth"`
	Grade  string `json:"grade"`
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

type Procedure struct {
	Procedure string   `json:"procedure"`
	Total     float64  `json:"total"`
	Paid      float64  `json:"paid"`
	Due       float64  `json:"due"`
	Dates     []string `json:"dates"`
}

type Visit struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint     `gorm:"not null;index" json:"patient_id"`
	Patient   *Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"patient,omitempty"`

	VisitDate time.Time `gorm:"type:date;not null;index" json:"visit_date"`

	ChiefComplaint      string         `gorm:"type:text" json:"chief_complaint"`
	TriggerFactors      pq.StringArray `gorm:"type:text[]" json:"trigger_factors"`
	DurationOfComplaint string         `gorm:"size:100" json:"duration_of_complaint"`

	Findings      datatypes.JSONSlice[ToothFinding] `gorm:"type:jsonb" json:"findings"`
	Diagnosis     string                            `gorm:"type:text" json:"diagnosis"`
	TreatmentPlan string                            `gorm:"type:text" json:"treatment_plan"`
	Procedures    datatypes.JSONSlice[Procedure]    `gorm:"type:jsonb" json:"procedures"`

	TotalAmount float64 `json:"total_amount"`
	PaidAmount  float64 `json:"paid_amount"`
	DueAmount   float64 `json:"due_amount"`

	Dentist string `gorm:"size:150" json:"dentist"`
	Notes   string `gorm:"type:text" json:"notes"`

	CreatedBy string `gorm:"size:64" json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
