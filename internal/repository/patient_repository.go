package repository

import (
	"database/sql"

	"clinic-manager/internal/database"
	"clinic-manager/internal/models"
)

type PatientRepository interface {
	GetAll(filter models.PatientFilter) ([]models.Patient, error)
	GetByID(id int64) (*models.Patient, error)
	Create(patient *models.Patient) error
	Update(id int64, patient *models.Patient) error
	Delete(id int64) error
	NamesByID() (map[int64]string, error)
}

type patientRepository struct {
	db *database.DB
}

func NewPatientRepository(db *database.DB) PatientRepository {
	return &patientRepository{db: db}
}

const patientColumns = `
	id, name, dob, COALESCE(phone, ''), COALESCE(alternate_phone, ''),
	COALESCE(email, ''), COALESCE(gender, ''), COALESCE(address, ''),
	COALESCE(medical_history, ''), COALESCE(allergies, ''),
	COALESCE(current_medications, ''), COALESCE(avatar_url, ''),
	created_at, updated_at
`

func scanPatient(row interface{ Scan(...interface{}) error }) (models.Patient, error) {
	var p models.Patient
	err := row.Scan(&p.ID, &p.Name, &p.DOB, &p.Phone, &p.AlternatePhone,
		&p.Email, &p.Gender, &p.Address,
		&p.MedicalHistory, &p.Allergies, &p.CurrentMedications, &p.AvatarURL,
		&p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *patientRepository) GetAll(filter models.PatientFilter) ([]models.Patient, error) {
	query := "SELECT " + patientColumns + " FROM patients"
	args := []interface{}{}

	if filter.Query != "" {
		query += " WHERE name LIKE ? COLLATE NOCASE OR phone LIKE ?"
		like := "%" + filter.Query + "%"
		args = append(args, like, like)
	}
	query += " ORDER BY name COLLATE NOCASE ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var patients []models.Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

func (r *patientRepository) GetByID(id int64) (*models.Patient, error) {
	row := r.db.QueryRow("SELECT "+patientColumns+" FROM patients WHERE id = ?", id)
	p, err := scanPatient(row)
	if err == sql.ErrNoRows {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *patientRepository) Create(patient *models.Patient) error {
	query := `
		INSERT INTO patients (name, dob, phone, alternate_phone, email, gender, address,
			medical_history, allergies, current_medications, avatar_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`
	result, err := r.db.Exec(query, patient.Name, patient.DOB, patient.Phone, patient.AlternatePhone,
		patient.Email, patient.Gender, patient.Address,
		patient.MedicalHistory, patient.Allergies, patient.CurrentMedications, patient.AvatarURL)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	patient.ID = id
	return nil
}

func (r *patientRepository) Update(id int64, patient *models.Patient) error {
	query := `
		UPDATE patients
		SET name = ?, dob = ?, phone = ?, alternate_phone = ?, email = ?, gender = ?, address = ?,
			medical_history = ?, allergies = ?, current_medications = ?, avatar_url = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	result, err := r.db.Exec(query, patient.Name, patient.DOB, patient.Phone, patient.AlternatePhone,
		patient.Email, patient.Gender, patient.Address,
		patient.MedicalHistory, patient.Allergies, patient.CurrentMedications, patient.AvatarURL, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}
	patient.ID = id
	return nil
}

func (r *patientRepository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM patients WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}
	return nil
}

// NamesByID returns the id → name map used to derive revenue descriptions.
func (r *patientRepository) NamesByID() (map[int64]string, error) {
	rows, err := r.db.Query("SELECT id, name FROM patients")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make(map[int64]string)
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}
