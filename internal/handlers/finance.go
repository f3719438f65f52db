// internal/handlers/finance.go
package handlers

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"time"

	"clinic-manager/internal/finance"
	"clinic-manager/internal/models"
	"clinic-manager/internal/repository"
)

// ================= REVENUE (PAYMENTS) =================

func (h *Handler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentRepo.GetAll()
	if err != nil {
		h.serverError(w, "failed to list revenue entries", err)
		return
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	respondJSON(w, http.StatusOK, payments)
}

func (h *Handler) CreateRevenue(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PatientID models.FlexInt64 `json:"patientId"`
		Amount    models.Money     `json:"amount"`
		Notes     string           `json:"notes"`
		Method    string           `json:"method"`
		Date      models.CivilDate `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Amount.IsZero() {
		http.Error(w, "amount is required", http.StatusBadRequest)
		return
	}

	payment := models.Payment{
		PatientID:   req.PatientID.Int64(),
		Amount:      req.Amount,
		Description: req.Notes,
		Method:      req.Method,
		Date:        req.Date,
		Status:      "Paid",
	}
	if payment.Method == "" {
		payment.Method = "Cash"
	}
	if payment.Date.IsZero() {
		payment.Date = models.CivilDateOf(time.Now())
	}

	if err := h.paymentRepo.Create(&payment); err != nil {
		h.serverError(w, "failed to create revenue entry", err)
		return
	}
	respondJSON(w, http.StatusCreated, payment)
}

// ================= EXPENSES =================

func (h *Handler) GetExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.expenseRepo.GetAll()
	if err != nil {
		h.serverError(w, "failed to list expenses", err)
		return
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	respondJSON(w, http.StatusOK, expenses)
}

func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var expense models.Expense
	if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if expense.Type == "" {
		http.Error(w, "type is required", http.StatusBadRequest)
		return
	}
	if expense.Date.IsZero() {
		expense.Date = models.CivilDateOf(time.Now())
	}

	if err := h.expenseRepo.Create(&expense); err != nil {
		h.serverError(w, "failed to create expense", err)
		return
	}
	respondJSON(w, http.StatusCreated, expense)
}

func (h *Handler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid expense id", http.StatusBadRequest)
		return
	}

	expense, err := h.expenseRepo.GetByID(id)
	if err == repository.ErrExpenseNotFound {
		http.Error(w, "expense not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.serverError(w, "failed to load expense", err)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(expense); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.expenseRepo.Update(id, expense); err != nil {
		h.serverError(w, "failed to update expense", err)
		return
	}
	respondJSON(w, http.StatusOK, expense)
}

func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid expense id", http.StatusBadRequest)
		return
	}

	if err := h.expenseRepo.Delete(id); err != nil {
		if err == repository.ErrExpenseNotFound {
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}
		h.serverError(w, "failed to delete expense", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ================= ANALYTICS =================

// periodFromRequest reads filter/from/to query params. Unparseable bounds
// come back as zero dates, which ResolveWindow treats as missing.
func periodFromRequest(r *http.Request) (finance.Period, finance.CustomRange) {
	q := r.URL.Query()
	period := finance.Period(q.Get("filter"))
	if period == "" {
		period = finance.PeriodThisMonth
	}

	var custom finance.CustomRange
	if from, err := models.ParseCivilDate(q.Get("from")); err == nil {
		custom.From = from
	}
	if to, err := models.ParseCivilDate(q.Get("to")); err == nil {
		custom.To = to
	}
	return period, custom
}

// loadStreams assembles the two logical entry streams: reconciled revenue
// (completed appointments + recorded payments) and expenses.
func (h *Handler) loadStreams() (revenue, expenses []finance.Entry, err error) {
	views, err := h.appointmentRepo.GetAll(0)
	if err != nil {
		return nil, nil, err
	}
	payments, err := h.paymentRepo.GetAll()
	if err != nil {
		return nil, nil, err
	}
	expenseRecords, err := h.expenseRepo.GetAll()
	if err != nil {
		return nil, nil, err
	}
	names, err := h.patientRepo.NamesByID()
	if err != nil {
		return nil, nil, err
	}

	appointments := make([]models.Appointment, 0, len(views))
	for _, v := range views {
		appointments = append(appointments, v.Appointment)
	}

	return finance.ReconcileRevenue(appointments, payments, names),
		finance.ExpenseEntries(expenseRecords), nil
}

// FinanceSummary returns period totals for the dashboard cards.
func (h *Handler) FinanceSummary(w http.ResponseWriter, r *http.Request) {
	revenue, expenses, err := h.loadStreams()
	if err != nil {
		h.serverError(w, "failed to load finance data", err)
		return
	}

	period, custom := periodFromRequest(r)
	summary := finance.Summarize(revenue, expenses, period, custom, models.CivilDateOf(time.Now()))
	respondJSON(w, http.StatusOK, summary)
}

// FinanceChart returns the bucketed revenue/expense series for the chart.
func (h *Handler) FinanceChart(w http.ResponseWriter, r *http.Request) {
	revenue, expenses, err := h.loadStreams()
	if err != nil {
		h.serverError(w, "failed to load finance data", err)
		return
	}

	period, custom := periodFromRequest(r)
	buckets := finance.ChartSeries(revenue, expenses, period, custom, models.CivilDateOf(time.Now()))
	respondJSON(w, http.StatusOK, buckets)
}

// FinanceDay returns everything that happened on one calendar day: the
// appointments plus the matching revenue and expense entries, for the
// calendar's detail panel.
func (h *Handler) FinanceDay(w http.ResponseWriter, r *http.Request) {
	day, err := models.ParseCivilDate(r.URL.Query().Get("date"))
	if err != nil || !day.Valid() {
		http.Error(w, "a valid date is required", http.StatusBadRequest)
		return
	}

	revenue, expenses, err := h.loadStreams()
	if err != nil {
		h.serverError(w, "failed to load finance data", err)
		return
	}
	views, err := h.appointmentRepo.GetAll(0)
	if err != nil {
		h.serverError(w, "failed to list appointments", err)
		return
	}

	dayRevenue := finance.EntriesOn(revenue, day)
	dayExpenses := finance.EntriesOn(expenses, day)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"date":         day,
		"appointments": finance.AppointmentsOn(views, day),
		"revenue":      dayRevenue,
		"expenses":     dayExpenses,
		"netProfit":    finance.Total(dayRevenue).Sub(finance.Total(dayExpenses)),
	})
}

// FinanceExport streams the filtered entries as CSV for bookkeeping.
func (h *Handler) FinanceExport(w http.ResponseWriter, r *http.Request) {
	revenue, expenses, err := h.loadStreams()
	if err != nil {
		h.serverError(w, "failed to load finance data", err)
		return
	}

	period, custom := periodFromRequest(r)
	window := finance.ResolveWindow(period, custom, models.CivilDateOf(time.Now()))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="finance-export.csv"`)

	cw := csv.NewWriter(w)
	cw.Write([]string{"kind", "id", "date", "category", "description", "amount"})
	for _, e := range finance.FilterByWindow(revenue, window) {
		cw.Write([]string{"revenue", e.ID, e.Date.String(), e.Category, e.Description, e.Amount.String()})
	}
	for _, e := range finance.FilterByWindow(expenses, window) {
		cw.Write([]string{"expense", e.ID, e.Date.String(), e.Category, e.Description, e.Amount.String()})
	}
	cw.Flush()
}
