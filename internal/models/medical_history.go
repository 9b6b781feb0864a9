package models

import "time"

// MedicalHistory is one-to-one with Patient.
type MedicalHistory struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	PatientID uint `gorm:"uniqueIndex;not null" json:"patient_id"`

	Diabetes         bool `json:"diabetes"`
	Hypertension     bool `json:"hypertension"`
	HeartDisease     bool `json:"heart_disease"`
	Asthma           bool `json:"asthma"`
	Allergies        bool `json:"allergies"`
	BleedingDisorder bool `json:"bleeding_disorder"`
	Epilepsy         bool `json:"epilepsy"`
	ThyroidDisorder  bool `json:"thyroid_disorder"`
	KidneyDisease    bool `json:"kidney_disease"`
	LiverDisease     bool `json:"liver_disease"`
	Hepatitis        bool `json:"hepatitis"`
	HIV              bool `gorm:"column:hiv" json:"hiv"`
	Pregnancy        bool `json:"pregnancy"`
	Smoker           bool `json:"smoker"`
	AlcoholUse       bool `json:"alcohol_use"`

	AllergyDetails     string `gorm:"type:text" json:"allergy_details"`
	CurrentMedications string `gorm:"type:text" json:"current_medications"`
	PastSurgeries      string `gorm:"type:text" json:"past_surgeries"`
	OtherConditions    string `gorm:"type:text" json:"other_conditions"`
	Notes              string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MedicalHistory) TableName() string {
	return "medical_histories"
}
