// internal/handlers/treatments.go
package handlers

import (
	"encoding/json"
	"net/http"

	"clinic-manager/internal/models"
	"clinic-manager/internal/repository"
)

func (h *Handler) GetTreatmentTables(w http.ResponseWriter, r *http.Request) {
	patientID := queryID(r, "patientId")
	if patientID == 0 {
		http.Error(w, "patientId is required", http.StatusBadRequest)
		return
	}

	tables, err := h.treatmentRepo.GetTables(patientID)
	if err != nil {
		h.serverError(w, "failed to list treatment tables", err)
		return
	}
	if tables == nil {
		tables = []models.TreatmentTable{}
	}
	respondJSON(w, http.StatusOK, tables)
}

func (h *Handler) CreateTreatmentTable(w http.ResponseWriter, r *http.Request) {
	var table models.TreatmentTable
	if err := json.NewDecoder(r.Body).Decode(&table); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if table.PatientID == 0 {
		http.Error(w, "patientId is required", http.StatusBadRequest)
		return
	}

	rows := table.Rows
	table.Rows = nil
	if err := h.treatmentRepo.CreateTable(&table); err != nil {
		h.serverError(w, "failed to create treatment table", err)
		return
	}
	for i := range rows {
		if err := h.treatmentRepo.AddRow(table.ID, &rows[i]); err != nil {
			h.serverError(w, "failed to add treatment row", err)
			return
		}
	}
	table.Rows = rows
	if table.Rows == nil {
		table.Rows = []models.TreatmentRow{}
	}
	respondJSON(w, http.StatusCreated, table)
}

func (h *Handler) DeleteTreatmentTable(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid treatment table id", http.StatusBadRequest)
		return
	}

	if err := h.treatmentRepo.DeleteTable(id); err != nil {
		if err == repository.ErrTreatmentNotFound {
			http.Error(w, "treatment table not found", http.StatusNotFound)
			return
		}
		h.serverError(w, "failed to delete treatment table", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddTreatmentRow(w http.ResponseWriter, r *http.Request) {
	tableID, err := pathID(r, "tableId")
	if err != nil {
		http.Error(w, "invalid treatment table id", http.StatusBadRequest)
		return
	}

	var row models.TreatmentRow
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.treatmentRepo.AddRow(tableID, &row); err != nil {
		if err == repository.ErrTreatmentNotFound {
			http.Error(w, "treatment table not found", http.StatusNotFound)
			return
		}
		h.serverError(w, "failed to add treatment row", err)
		return
	}
	respondJSON(w, http.StatusCreated, row)
}

func (h *Handler) UpdateTreatmentRow(w http.ResponseWriter, r *http.Request) {
	rowID, err := pathID(r, "rowId")
	if err != nil {
		http.Error(w, "invalid treatment row id", http.StatusBadRequest)
		return
	}

	var row models.TreatmentRow
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.treatmentRepo.UpdateRow(rowID, &row); err != nil {
		if err == repository.ErrTreatmentRowNotFound {
			http.Error(w, "treatment row not found", http.StatusNotFound)
			return
		}
		h.serverError(w, "failed to update treatment row", err)
		return
	}
	respondJSON(w, http.StatusOK, row)
}

func (h *Handler) DeleteTreatmentRow(w http.ResponseWriter, r *http.Request) {
	rowID, err := pathID(r, "rowId")
	if err != nil {
		http.Error(w, "invalid treatment row id", http.StatusBadRequest)
		return
	}

	if err := h.treatmentRepo.DeleteRow(rowID); err != nil {
		if err == repository.ErrTreatmentRowNotFound {
			http.Error(w, "treatment row not found", http.StatusNotFound)
			return
		}
		h.serverError(w, "failed to delete treatment row", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
