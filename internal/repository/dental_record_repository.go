package repository

import (
	"clinic-manager/internal/database"
	"clinic-manager/internal/models"
)

type DentalRecordRepository interface {
	// GetAll returns records for a patient, newest first. patientID of 0
	// means all patients.
	GetAll(patientID int64) ([]models.DentalRecord, error)
	Create(record *models.DentalRecord) error
	Update(id int64, record *models.DentalRecord) error
	Delete(id int64) error
}

type dentalRecordRepository struct {
	db *database.DB
}

func NewDentalRecordRepository(db *database.DB) DentalRecordRepository {
	return &dentalRecordRepository{db: db}
}

const dentalRecordColumns = `
	id, patient_id, date, COALESCE(treatment_name, ''), COALESCE(notes, ''),
	COALESCE(cost, 0), COALESCE(prescription_url, ''), COALESCE(additional_file_url, ''),
	COALESCE(prescription_file_name, ''), COALESCE(additional_file_name, '')
`

func (r *dentalRecordRepository) GetAll(patientID int64) ([]models.DentalRecord, error) {
	query := "SELECT " + dentalRecordColumns + " FROM dental_records"
	args := []interface{}{}
	if patientID != 0 {
		query += " WHERE patient_id = ?"
		args = append(args, patientID)
	}
	query += " ORDER BY date DESC, id DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.DentalRecord
	for rows.Next() {
		var rec models.DentalRecord
		err := rows.Scan(&rec.ID, &rec.PatientID, &rec.Date, &rec.TreatmentName, &rec.Notes,
			&rec.Cost, &rec.PrescriptionURL, &rec.AdditionalFileURL,
			&rec.PrescriptionFileName, &rec.AdditionalFileName)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *dentalRecordRepository) Create(record *models.DentalRecord) error {
	query := `
		INSERT INTO dental_records (patient_id, date, treatment_name, notes, cost,
			prescription_url, additional_file_url, prescription_file_name, additional_file_name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.Exec(query, record.PatientID, record.Date, record.TreatmentName,
		record.Notes, record.Cost, record.PrescriptionURL, record.AdditionalFileURL,
		record.PrescriptionFileName, record.AdditionalFileName)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	record.ID = id
	return nil
}

func (r *dentalRecordRepository) Update(id int64, record *models.DentalRecord) error {
	query := `
		UPDATE dental_records
		SET date = ?, treatment_name = ?, notes = ?, cost = ?,
			prescription_url = ?, additional_file_url = ?,
			prescription_file_name = ?, additional_file_name = ?
		WHERE id = ?
	`
	result, err := r.db.Exec(query, record.Date, record.TreatmentName, record.Notes, record.Cost,
		record.PrescriptionURL, record.AdditionalFileURL,
		record.PrescriptionFileName, record.AdditionalFileName, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDentalRecordNotFound
	}
	record.ID = id
	return nil
}

func (r *dentalRecordRepository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM dental_records WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDentalRecordNotFound
	}
	return nil
}
