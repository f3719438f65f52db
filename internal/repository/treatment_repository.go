package repository

import (
	"database/sql"

	"clinic-manager/internal/database"
	"clinic-manager/internal/models"
)

type TreatmentRepository interface {
	// GetTables returns a patient's treatment tables with rows attached.
	GetTables(patientID int64) ([]models.TreatmentTable, error)
	CreateTable(table *models.TreatmentTable) error
	DeleteTable(id int64) error
	AddRow(tableID int64, row *models.TreatmentRow) error
	UpdateRow(rowID int64, row *models.TreatmentRow) error
	DeleteRow(rowID int64) error
}

type treatmentRepository struct {
	db *database.DB
}

func NewTreatmentRepository(db *database.DB) TreatmentRepository {
	return &treatmentRepository{db: db}
}

func (r *treatmentRepository) GetTables(patientID int64) ([]models.TreatmentTable, error) {
	rows, err := r.db.Query(`
		SELECT id, patient_id, COALESCE(title, '')
		FROM treatment_tables WHERE patient_id = ? ORDER BY id ASC
	`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []models.TreatmentTable
	for rows.Next() {
		var t models.TreatmentTable
		if err := rows.Scan(&t.ID, &t.PatientID, &t.Title); err != nil {
			return nil, err
		}
		t.Rows = []models.TreatmentRow{}
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range tables {
		tableRows, err := r.rowsForTable(tables[i].ID)
		if err != nil {
			return nil, err
		}
		tables[i].Rows = tableRows
	}
	return tables, nil
}

func (r *treatmentRepository) rowsForTable(tableID int64) ([]models.TreatmentRow, error) {
	rows, err := r.db.Query(`
		SELECT id, treatment_table_id, COALESCE(notes, ''), COALESCE(cost, 0),
			COALESCE(status, ''), treatment_date
		FROM treatment_table_rows WHERE treatment_table_id = ? ORDER BY id ASC
	`, tableID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.TreatmentRow{}
	for rows.Next() {
		var row models.TreatmentRow
		if err := rows.Scan(&row.ID, &row.TableID, &row.Notes, &row.Cost, &row.Status, &row.Date); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *treatmentRepository) CreateTable(table *models.TreatmentTable) error {
	result, err := r.db.Exec("INSERT INTO treatment_tables (patient_id, title) VALUES (?, ?)",
		table.PatientID, table.Title)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	table.ID = id
	if table.Rows == nil {
		table.Rows = []models.TreatmentRow{}
	}
	return nil
}

func (r *treatmentRepository) DeleteTable(id int64) error {
	// Rows cascade via the foreign key, but delete explicitly since sqlite
	// only enforces cascades when foreign_keys is on.
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM treatment_table_rows WHERE treatment_table_id = ?", id); err != nil {
		return err
	}
	result, err := tx.Exec("DELETE FROM treatment_tables WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTreatmentNotFound
	}
	return tx.Commit()
}

func (r *treatmentRepository) AddRow(tableID int64, row *models.TreatmentRow) error {
	var exists int64
	err := r.db.QueryRow("SELECT id FROM treatment_tables WHERE id = ?", tableID).Scan(&exists)
	if err == sql.ErrNoRows {
		return ErrTreatmentNotFound
	}
	if err != nil {
		return err
	}

	result, err := r.db.Exec(`
		INSERT INTO treatment_table_rows (treatment_table_id, notes, cost, status, treatment_date)
		VALUES (?, ?, ?, ?, ?)
	`, tableID, row.Notes, row.Cost, row.Status, row.Date)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	row.ID = id
	row.TableID = tableID
	return nil
}

func (r *treatmentRepository) UpdateRow(rowID int64, row *models.TreatmentRow) error {
	result, err := r.db.Exec(`
		UPDATE treatment_table_rows
		SET notes = ?, cost = ?, status = ?, treatment_date = ?
		WHERE id = ?
	`, row.Notes, row.Cost, row.Status, row.Date, rowID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTreatmentRowNotFound
	}
	row.ID = rowID
	return nil
}

func (r *treatmentRepository) DeleteRow(rowID int64) error {
	result, err := r.db.Exec("DELETE FROM treatment_table_rows WHERE id = ?", rowID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTreatmentRowNotFound
	}
	return nil
}
