// internal/finance/entry.go

// Package finance implements the date-range and aggregation logic behind the
// financial dashboard: period resolution, entry filtering, day/month
// bucketing and reconciliation of appointment-derived revenue with manually
// recorded payments. Everything here is a pure function over its inputs;
// nothing is cached or mutated, so results are always recomputed from the
// current collections.
package finance

import (
	"fmt"
	"strconv"

	"clinic-manager/internal/models"
)

// Entry is the common shape revenue and expense records are reduced to before
// filtering and aggregation.
type Entry struct {
	ID          string           `json:"id"`
	Date        models.CivilDate `json:"date"`
	Amount      models.Money     `json:"amount"`
	Category    string           `json:"category,omitempty"`
	Description string           `json:"description,omitempty"`
	PatientID   int64            `json:"patientId,omitempty"`
}

// ExpenseEntries converts expense records into the aggregation shape.
func ExpenseEntries(expenses []models.Expense) []Entry {
	entries := make([]Entry, 0, len(expenses))
	for _, e := range expenses {
		entries = append(entries, Entry{
			ID:          strconv.FormatInt(e.ID, 10),
			Date:        e.Date,
			Amount:      e.Amount,
			Category:    e.Type,
			Description: e.Notes,
		})
	}
	return entries
}

// ReconcileRevenue merges the two revenue sources into one logical stream:
// completed appointments that carry a cost, and manually recorded payments.
// Synthetic appointment entries get an "app-" id prefix so they can never
// collide with payment ids. The result is rebuilt on every call; an
// appointment whose status moves away from Done disappears from the stream on
// the next recomputation.
func ReconcileRevenue(appointments []models.Appointment, payments []models.Payment, patientNames map[int64]string) []Entry {
	entries := make([]Entry, 0, len(appointments)+len(payments))

	for _, app := range appointments {
		if app.Status != models.StatusDone || app.Cost.IsZero() {
			continue
		}
		notes := app.Notes
		if notes == "" {
			notes = "Treatment"
		}
		entries = append(entries, Entry{
			ID:          "app-" + strconv.FormatInt(app.ID, 10),
			Date:        app.Date,
			Amount:      app.Cost,
			Category:    "Patient Appointment",
			Description: fmt.Sprintf("Appointment: %s for %s", notes, patientName(patientNames, app.PatientID)),
			PatientID:   app.PatientID,
		})
	}

	for _, p := range payments {
		desc := p.Description
		if desc == "" {
			if p.PatientID != 0 {
				desc = "Payment from " + patientName(patientNames, p.PatientID)
			} else {
				desc = "Misc. Revenue"
			}
		}
		category := "Other"
		if p.PatientID != 0 {
			category = "Patient"
		}
		entries = append(entries, Entry{
			ID:          strconv.FormatInt(p.ID, 10),
			Date:        p.Date,
			Amount:      p.Amount,
			Category:    category,
			Description: desc,
			PatientID:   p.PatientID,
		})
	}

	return entries
}

func patientName(names map[int64]string, id int64) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("ID: %d", id)
}
