// internal/models/dental_record.go
package models

type DentalRecord struct {
	ID                   int64     `json:"id"`
	PatientID            int64     `json:"patientId"`
	Date                 CivilDate `json:"date"`
	TreatmentName        string    `json:"treatmentName"`
	Notes                string    `json:"notes"`
	Cost                 Money     `json:"cost"`
	PrescriptionURL      string    `json:"prescriptionUrl,omitempty"`
	AdditionalFileURL    string    `json:"additionalFileUrl,omitempty"`
	PrescriptionFileName string    `json:"prescriptionFileName,omitempty"`
	AdditionalFileName   string    `json:"additionalFileName,omitempty"`
}
