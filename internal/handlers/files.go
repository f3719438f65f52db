// internal/handlers/files.go
package handlers

import (
	"net/http"

	"clinic-manager/internal/files"

	"github.com/gorilla/mux"
)

const maxUploadBytes = 10 << 20 // 10 MB

// UploadFile stores a multipart upload and returns the name and URL to
// reference it from patient avatars, receipts and dental record attachments.
func (h *Handler) UploadFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	name, err := h.storage.Save(file, header.Filename)
	if err != nil {
		h.serverError(w, "failed to store file", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"fileName":     name,
		"originalName": header.Filename,
		"url":          "/api/files/" + name,
	})
}

func (h *Handler) ServeFile(w http.ResponseWriter, r *http.Request) {
	path, err := h.storage.Path(mux.Vars(r)["name"])
	if err == files.ErrInvalidName {
		http.Error(w, "invalid file name", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.serverError(w, "failed to resolve file", err)
		return
	}
	http.ServeFile(w, r, path)
}
