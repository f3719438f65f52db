// internal/handlers/profile.go
package handlers

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.settingsRepo.GetProfile()
	if err != nil {
		h.serverError(w, "failed to load profile", err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.settingsRepo.GetProfile()
	if err != nil {
		h.serverError(w, "failed to load profile", err)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(profile); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.settingsRepo.UpdateProfile(profile); err != nil {
		h.serverError(w, "failed to update profile", err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

func (h *Handler) GetClinicSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsRepo.GetClinicSettings()
	if err != nil {
		h.serverError(w, "failed to load clinic settings", err)
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

func (h *Handler) UpdateClinicSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsRepo.GetClinicSettings()
	if err != nil {
		h.serverError(w, "failed to load clinic settings", err)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(settings); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.settingsRepo.UpdateClinicSettings(settings); err != nil {
		h.serverError(w, "failed to update clinic settings", err)
		return
	}
	respondJSON(w, http.StatusOK, settings)
}
