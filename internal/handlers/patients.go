// internal/handlers/patients.go
package handlers

import (
	"encoding/json"
	"net/http"

	"clinic-manager/internal/models"
	"clinic-manager/internal/repository"
)

func (h *Handler) GetPatients(w http.ResponseWriter, r *http.Request) {
	filter := models.PatientFilter{Query: r.URL.Query().Get("query")}

	patients, err := h.patientRepo.GetAll(filter)
	if err != nil {
		h.serverError(w, "failed to list patients", err)
		return
	}
	if patients == nil {
		patients = []models.Patient{}
	}
	respondJSON(w, http.StatusOK, patients)
}

func (h *Handler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid patient id", http.StatusBadRequest)
		return
	}

	patient, err := h.patientRepo.GetByID(id)
	if err == repository.ErrPatientNotFound {
		http.Error(w, "patient not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.serverError(w, "failed to load patient", err)
		return
	}
	respondJSON(w, http.StatusOK, patient)
}

func (h *Handler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var patient models.Patient
	if err := json.NewDecoder(r.Body).Decode(&patient); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if patient.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	if err := h.patientRepo.Create(&patient); err != nil {
		h.serverError(w, "failed to create patient", err)
		return
	}
	respondJSON(w, http.StatusCreated, patient)
}

func (h *Handler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid patient id", http.StatusBadRequest)
		return
	}

	// Decode over the stored record so omitted fields keep their values.
	patient, err := h.patientRepo.GetByID(id)
	if err == repository.ErrPatientNotFound {
		http.Error(w, "patient not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.serverError(w, "failed to load patient", err)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(patient); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if patient.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	if err := h.patientRepo.Update(id, patient); err != nil {
		h.serverError(w, "failed to update patient", err)
		return
	}
	respondJSON(w, http.StatusOK, patient)
}

func (h *Handler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid patient id", http.StatusBadRequest)
		return
	}

	if err := h.patientRepo.Delete(id); err != nil {
		if err == repository.ErrPatientNotFound {
			http.Error(w, "patient not found", http.StatusNotFound)
			return
		}
		h.serverError(w, "failed to delete patient", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
