package repository

import (
	"database/sql"

	"clinic-manager/internal/database"
	"clinic-manager/internal/models"
)

type AppointmentRepository interface {
	// GetAll returns appointments joined with patient names, ordered by date
	// then time. patientID of 0 means all patients.
	GetAll(patientID int64) ([]models.AppointmentView, error)
	GetByID(id int64) (*models.Appointment, error)
	Create(app *models.Appointment) error
	Update(id int64, app *models.Appointment) error
	Delete(id int64) error
}

type appointmentRepository struct {
	db *database.DB
}

func NewAppointmentRepository(db *database.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

const appointmentColumns = `
	a.id, a.patient_id, a.date, COALESCE(a.time, ''), COALESCE(a.notes, ''),
	COALESCE(a.cost, 0), a.status, a.created_at, a.updated_at
`

func (r *appointmentRepository) GetAll(patientID int64) ([]models.AppointmentView, error) {
	query := `
		SELECT ` + appointmentColumns + `, COALESCE(p.name, 'Unknown')
		FROM appointments a
		LEFT JOIN patients p ON p.id = a.patient_id
	`
	args := []interface{}{}
	if patientID != 0 {
		query += " WHERE a.patient_id = ?"
		args = append(args, patientID)
	}
	query += " ORDER BY a.date ASC, a.time ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []models.AppointmentView
	for rows.Next() {
		var v models.AppointmentView
		err := rows.Scan(&v.ID, &v.PatientID, &v.Date, &v.Time, &v.Notes,
			&v.Cost, &v.Status, &v.CreatedAt, &v.UpdatedAt, &v.PatientName)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

func (r *appointmentRepository) GetByID(id int64) (*models.Appointment, error) {
	query := `
		SELECT a.id, a.patient_id, a.date, COALESCE(a.time, ''), COALESCE(a.notes, ''),
			COALESCE(a.cost, 0), a.status, a.created_at, a.updated_at
		FROM appointments a WHERE a.id = ?
	`
	var a models.Appointment
	err := r.db.QueryRow(query, id).Scan(&a.ID, &a.PatientID, &a.Date, &a.Time, &a.Notes,
		&a.Cost, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *appointmentRepository) Create(app *models.Appointment) error {
	query := `
		INSERT INTO appointments (patient_id, date, time, notes, cost, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`
	result, err := r.db.Exec(query, app.PatientID, app.Date, app.Time, app.Notes, app.Cost, app.Status)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	app.ID = id
	return nil
}

func (r *appointmentRepository) Update(id int64, app *models.Appointment) error {
	query := `
		UPDATE appointments
		SET patient_id = ?, date = ?, time = ?, notes = ?, cost = ?, status = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	result, err := r.db.Exec(query, app.PatientID, app.Date, app.Time, app.Notes, app.Cost, app.Status, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}
	app.ID = id
	return nil
}

func (r *appointmentRepository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM appointments WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}
