// internal/models/appointment.go
package models

import (
	"time"
)

// Appointment statuses. Cost counts as realized revenue only for StatusDone.
const (
	StatusScheduled = "Scheduled"
	StatusConfirmed = "Confirmed"
	StatusDone      = "Done"
	StatusCancelled = "Cancelled"
	StatusMissed    = "Missed"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusDone, StatusCancelled, StatusMissed:
		return true
	}
	return false
}

type Appointment struct {
	ID        int64     `json:"id"`
	PatientID int64     `json:"patientId"`
	Date      CivilDate `json:"date"`
	Time      string    `json:"time,omitempty"` // "HH:MM", optional
	Notes     string    `json:"notes"`
	Cost      Money     `json:"cost"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentView is an Appointment joined with its patient's name, the shape
// the list endpoints return.
type AppointmentView struct {
	Appointment
	PatientName string `json:"patientName"`
}
