// internal/handlers/appointments.go
package handlers

import (
	"encoding/json"
	"net/http"

	"clinic-manager/internal/models"
	"clinic-manager/internal/repository"
)

type appointmentRequest struct {
	PatientID models.FlexInt64 `json:"patientId"`
	Date      models.CivilDate `json:"date"`
	Time      string           `json:"time"`
	Notes     string           `json:"notes"`
	Cost      models.Money     `json:"cost"`
	Status    string           `json:"status"`
}

func (h *Handler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	views, err := h.appointmentRepo.GetAll(queryID(r, "patientId"))
	if err != nil {
		h.serverError(w, "failed to list appointments", err)
		return
	}
	if views == nil {
		views = []models.AppointmentView{}
	}
	respondJSON(w, http.StatusOK, views)
}

func (h *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req appointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.PatientID == 0 {
		http.Error(w, "patientId is required", http.StatusBadRequest)
		return
	}
	if !req.Date.Valid() {
		http.Error(w, "a valid date is required", http.StatusBadRequest)
		return
	}
	if req.Status == "" {
		req.Status = models.StatusScheduled
	}
	if !models.ValidStatus(req.Status) {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	app := models.Appointment{
		PatientID: req.PatientID.Int64(),
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
		Cost:      req.Cost,
		Status:    req.Status,
	}
	if err := h.appointmentRepo.Create(&app); err != nil {
		h.serverError(w, "failed to create appointment", err)
		return
	}
	respondJSON(w, http.StatusCreated, app)
}

func (h *Handler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid appointment id", http.StatusBadRequest)
		return
	}

	app, err := h.appointmentRepo.GetByID(id)
	if err == repository.ErrAppointmentNotFound {
		http.Error(w, "appointment not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.serverError(w, "failed to load appointment", err)
		return
	}

	req := appointmentRequest{
		PatientID: models.FlexInt64(app.PatientID),
		Date:      app.Date,
		Time:      app.Time,
		Notes:     app.Notes,
		Cost:      app.Cost,
		Status:    app.Status,
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !req.Date.Valid() {
		http.Error(w, "a valid date is required", http.StatusBadRequest)
		return
	}
	if !models.ValidStatus(req.Status) {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	app.PatientID = req.PatientID.Int64()
	app.Date = req.Date
	app.Time = req.Time
	app.Notes = req.Notes
	app.Cost = req.Cost
	app.Status = req.Status

	if err := h.appointmentRepo.Update(id, app); err != nil {
		h.serverError(w, "failed to update appointment", err)
		return
	}
	respondJSON(w, http.StatusOK, app)
}

func (h *Handler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid appointment id", http.StatusBadRequest)
		return
	}

	if err := h.appointmentRepo.Delete(id); err != nil {
		if err == repository.ErrAppointmentNotFound {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		h.serverError(w, "failed to delete appointment", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
