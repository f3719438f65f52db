// internal/models/patient.go
package models

import (
	"time"
)

type Patient struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	DOB                CivilDate `json:"dob"`
	Phone              string    `json:"phone"`
	AlternatePhone     string    `json:"alternatePhone"`
	Email              string    `json:"email"`
	Gender             string    `json:"gender"`
	Address            string    `json:"address"`
	MedicalHistory     string    `json:"medicalHistory"`
	Allergies          string    `json:"allergies"`
	CurrentMedications string    `json:"currentMedications"`
	AvatarURL          string    `json:"avatarUrl"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type PatientFilter struct {
	Query string // matches name or phone, case-insensitive
}
