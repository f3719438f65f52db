// internal/handlers/procedures.go
package handlers

import (
	"encoding/json"
	"net/http"

	"clinic-manager/internal/models"
	"clinic-manager/internal/repository"
)

func (h *Handler) GetProcedures(w http.ResponseWriter, r *http.Request) {
	items, err := h.procedureRepo.GetAll()
	if err != nil {
		h.serverError(w, "failed to list procedures", err)
		return
	}
	if items == nil {
		items = []models.ProcedureItem{}
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *Handler) CreateProcedure(w http.ResponseWriter, r *http.Request) {
	var item models.ProcedureItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if item.Description == "" {
		http.Error(w, "description is required", http.StatusBadRequest)
		return
	}

	if err := h.procedureRepo.Create(&item); err != nil {
		h.serverError(w, "failed to create procedure", err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (h *Handler) UpdateProcedure(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid procedure id", http.StatusBadRequest)
		return
	}

	var item models.ProcedureItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.procedureRepo.Update(id, &item); err != nil {
		if err == repository.ErrProcedureNotFound {
			http.Error(w, "procedure not found", http.StatusNotFound)
			return
		}
		h.serverError(w, "failed to update procedure", err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *Handler) DeleteProcedure(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid procedure id", http.StatusBadRequest)
		return
	}

	if err := h.procedureRepo.Delete(id); err != nil {
		if err == repository.ErrProcedureNotFound {
			http.Error(w, "procedure not found", http.StatusNotFound)
			return
		}
		h.serverError(w, "failed to delete procedure", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
