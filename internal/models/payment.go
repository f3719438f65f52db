// internal/models/payment.go
package models

import (
	"time"
)

// Payment is a manually recorded revenue entry. PatientID is zero when the
// revenue is not tied to a patient.
type Payment struct {
	ID          int64     `json:"id"`
	PatientID   int64     `json:"patientId,omitempty"`
	Amount      Money     `json:"amount"`
	Description string    `json:"description"`
	Method      string    `json:"method"`
	Date        CivilDate `json:"date"`
	Status      string    `json:"status"`
	ReceiptURL  string    `json:"receiptUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
