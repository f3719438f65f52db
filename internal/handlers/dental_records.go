// internal/handlers/dental_records.go
package handlers

import (
	"encoding/json"
	"net/http"

	"clinic-manager/internal/models"
	"clinic-manager/internal/repository"
)

func (h *Handler) GetDentalRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.dentalRecordRepo.GetAll(queryID(r, "patientId"))
	if err != nil {
		h.serverError(w, "failed to list dental records", err)
		return
	}
	if records == nil {
		records = []models.DentalRecord{}
	}
	respondJSON(w, http.StatusOK, records)
}

func (h *Handler) CreateDentalRecord(w http.ResponseWriter, r *http.Request) {
	var record models.DentalRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if record.PatientID == 0 {
		http.Error(w, "patientId is required", http.StatusBadRequest)
		return
	}
	if !record.Date.Valid() {
		http.Error(w, "a valid date is required", http.StatusBadRequest)
		return
	}

	if err := h.dentalRecordRepo.Create(&record); err != nil {
		h.serverError(w, "failed to create dental record", err)
		return
	}
	respondJSON(w, http.StatusCreated, record)
}

func (h *Handler) UpdateDentalRecord(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid dental record id", http.StatusBadRequest)
		return
	}

	var record models.DentalRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.dentalRecordRepo.Update(id, &record); err != nil {
		if err == repository.ErrDentalRecordNotFound {
			http.Error(w, "dental record not found", http.StatusNotFound)
			return
		}
		h.serverError(w, "failed to update dental record", err)
		return
	}
	respondJSON(w, http.StatusOK, record)
}

func (h *Handler) DeleteDentalRecord(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid dental record id", http.StatusBadRequest)
		return
	}

	if err := h.dentalRecordRepo.Delete(id); err != nil {
		if err == repository.ErrDentalRecordNotFound {
			http.Error(w, "dental record not found", http.StatusNotFound)
			return
		}
		h.serverError(w, "failed to delete dental record", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
