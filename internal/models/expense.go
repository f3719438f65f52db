// internal/models/expense.go
package models

import (
	"time"
)

// Expense types mirror the quick-add actions in the dashboard; Type is free
// text so new categories don't need a migration.
type Expense struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"` // e.g. "Rent", "Staff Salary", "Equipment"
	Amount    Money     `json:"amount"`
	Notes     string    `json:"notes"`
	Date      CivilDate `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
