// internal/models/treatment.go
package models

// TreatmentTable groups a patient's treatment plan into a titled table of
// rows, each row a dated procedure with its own cost and status.
type TreatmentTable struct {
	ID        int64          `json:"id"`
	PatientID int64          `json:"patientId"`
	Title     string         `json:"title"`
	Rows      []TreatmentRow `json:"rows"`
}

type TreatmentRow struct {
	ID      int64     `json:"id"`
	TableID int64     `json:"tableId"`
	Notes   string    `json:"notes"`
	Cost    Money     `json:"cost"`
	Status  string    `json:"status"`
	Date    CivilDate `json:"date"`
}
