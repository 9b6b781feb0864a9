package models

import (
	"time"

	"gorm.io/datatypes"
)

type EmergencyContact struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Phone    string `json:"phone"`
}

type Patient struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string     `gorm:"size:150;not null;index" json:"name"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth"`
	Gender      string     `gorm:"size:10;index" json:"gender"`
	Phone       string     `gorm:"size:20;not null;index" json:"phone"`
	Email       string     `gorm:"size:150" json:"email"`
	Address     string     `gorm:"size:255" json:"address"`
	Occupation  string     `gorm:"size:100" json:"occupation"`
	BloodGroup  string     `gorm:"size:3" json:"blood_group"`

	EmergencyContact datatypes.JSONType[EmergencyContact] `gorm:"type:jsonb" json:"emergency_contact"`

	PhotoURL string `gorm:"size:500" json:"photo_url"`
	Notes    string `gorm:"type:text" json:"notes"`

	CreatedBy string `gorm:"size:64" json:"created_by"`

	MedicalHistory *MedicalHistory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"medical_history,omitempty"`
	Visits         []Visit         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
