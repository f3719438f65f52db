// internal/handlers/handlers.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-manager/internal/database"
	"clinic-manager/internal/files"
	"clinic-manager/internal/repository"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	log     *zap.Logger
	storage *files.Storage

	patientRepo      repository.PatientRepository
	appointmentRepo  repository.AppointmentRepository
	paymentRepo      repository.PaymentRepository
	expenseRepo      repository.ExpenseRepository
	treatmentRepo    repository.TreatmentRepository
	dentalRecordRepo repository.DentalRecordRepository
	procedureRepo    repository.ProcedureRepository
	settingsRepo     repository.SettingsRepository
}

func New(db *database.DB, log *zap.Logger, storage *files.Storage) *Handler {
	return &Handler{
		log:              log,
		storage:          storage,
		patientRepo:      repository.NewPatientRepository(db),
		appointmentRepo:  repository.NewAppointmentRepository(db),
		paymentRepo:      repository.NewPaymentRepository(db),
		expenseRepo:      repository.NewExpenseRepository(db),
		treatmentRepo:    repository.NewTreatmentRepository(db),
		dentalRecordRepo: repository.NewDentalRecordRepository(db),
		procedureRepo:    repository.NewProcedureRepository(db),
		settingsRepo:     repository.NewSettingsRepository(db),
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) serverError(w http.ResponseWriter, msg string, err error) {
	h.log.Error(msg, zap.Error(err))
	http.Error(w, msg, http.StatusInternalServerError)
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}

func queryID(r *http.Request, name string) int64 {
	id, err := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
