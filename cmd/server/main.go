// cmd/server/main.go
package main

import (
	"log"
	"net/http"

	"clinic-manager/internal/config"
	"clinic-manager/internal/database"
	"clinic-manager/internal/files"
	"clinic-manager/internal/handlers"
	"clinic-manager/internal/logger"
	"clinic-manager/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel, cfg.Stage)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	db, err := database.New(cfg.DBPath)
	if err != nil {
		zlog.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	storage, err := files.NewStorage(cfg.UploadDir)
	if err != nil {
		zlog.Fatal("failed to prepare upload directory", zap.Error(err))
	}

	h := handlers.New(db, zlog, storage)

	r := mux.NewRouter()
	r.Use(middleware.Recover(zlog))
	r.Use(middleware.Logging(zlog))

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", h.Health).Methods("GET")

	// Patients
	api.HandleFunc("/patients", h.GetPatients).Methods("GET")
	api.HandleFunc("/patients", h.CreatePatient).Methods("POST")
	api.HandleFunc("/patients/{id}", h.GetPatient).Methods("GET")
	api.HandleFunc("/patients/{id}", h.UpdatePatient).Methods("PUT")
	api.HandleFunc("/patients/{id}", h.DeletePatient).Methods("DELETE")

	// Appointments
	api.HandleFunc("/appointments", h.GetAppointments).Methods("GET")
	api.HandleFunc("/appointments", h.CreateAppointment).Methods("POST")
	api.HandleFunc("/appointments/{id}", h.UpdateAppointment).Methods("PUT")
	api.HandleFunc("/appointments/{id}", h.DeleteAppointment).Methods("DELETE")

	// Finance: manual revenue, expenses, and the derived views
	api.HandleFunc("/revenue", h.GetRevenue).Methods("GET")
	api.HandleFunc("/revenue", h.CreateRevenue).Methods("POST")
	api.HandleFunc("/expenses", h.GetExpenses).Methods("GET")
	api.HandleFunc("/expenses", h.CreateExpense).Methods("POST")
	api.HandleFunc("/expenses/{id}", h.UpdateExpense).Methods("PUT")
	api.HandleFunc("/expenses/{id}", h.DeleteExpense).Methods("DELETE")
	api.HandleFunc("/finance/summary", h.FinanceSummary).Methods("GET")
	api.HandleFunc("/finance/chart", h.FinanceChart).Methods("GET")
	api.HandleFunc("/finance/day", h.FinanceDay).Methods("GET")
	api.HandleFunc("/finance/export", h.FinanceExport).Methods("GET")

	// Treatment tables and their rows
	api.HandleFunc("/treatments", h.GetTreatmentTables).Methods("GET")
	api.HandleFunc("/treatments", h.CreateTreatmentTable).Methods("POST")
	api.HandleFunc("/treatments/{id}", h.DeleteTreatmentTable).Methods("DELETE")
	api.HandleFunc("/treatments/{tableId}/rows", h.AddTreatmentRow).Methods("POST")
	api.HandleFunc("/treatments/rows/{rowId}", h.UpdateTreatmentRow).Methods("PUT")
	api.HandleFunc("/treatments/rows/{rowId}", h.DeleteTreatmentRow).Methods("DELETE")

	// Dental records
	api.HandleFunc("/dentalrecords", h.GetDentalRecords).Methods("GET")
	api.HandleFunc("/dentalrecords", h.CreateDentalRecord).Methods("POST")
	api.HandleFunc("/dentalrecords/{id}", h.UpdateDentalRecord).Methods("PUT")
	api.HandleFunc("/dentalrecords/{id}", h.DeleteDentalRecord).Methods("DELETE")

	// Procedure price catalog
	api.HandleFunc("/procedures", h.GetProcedures).Methods("GET")
	api.HandleFunc("/procedures", h.CreateProcedure).Methods("POST")
	api.HandleFunc("/procedures/{id}", h.UpdateProcedure).Methods("PUT")
	api.HandleFunc("/procedures/{id}", h.DeleteProcedure).Methods("DELETE")

	// Singletons
	api.HandleFunc("/profile", h.GetProfile).Methods("GET")
	api.HandleFunc("/profile", h.UpdateProfile).Methods("PUT")
	api.HandleFunc("/clinic-settings", h.GetClinicSettings).Methods("GET")
	api.HandleFunc("/clinic-settings", h.UpdateClinicSettings).Methods("PUT")

	// File uploads
	api.HandleFunc("/files", h.UploadFile).Methods("POST")
	api.HandleFunc("/files/{name}", h.ServeFile).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	addr := "0.0.0.0:" + cfg.Port
	zlog.Info("server starting", zap.String("addr", addr), zap.String("stage", cfg.Stage))
	if err := http.ListenAndServe(addr, c.Handler(r)); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
