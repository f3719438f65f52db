package repository

import (
	"database/sql"

	"clinic-manager/internal/database"
	"clinic-manager/internal/models"
)

type PaymentRepository interface {
	GetAll() ([]models.Payment, error)
	Create(payment *models.Payment) error
}

type paymentRepository struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) GetAll() ([]models.Payment, error) {
	query := `
		SELECT id, patient_id, amount, COALESCE(description, ''), COALESCE(method, ''),
			date, COALESCE(status, ''), COALESCE(receipt_url, ''), created_at, updated_at
		FROM payments
		ORDER BY date DESC, id DESC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		var patientID sql.NullInt64
		err := rows.Scan(&p.ID, &patientID, &p.Amount, &p.Description, &p.Method,
			&p.Date, &p.Status, &p.ReceiptURL, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		p.PatientID = patientID.Int64
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) Create(payment *models.Payment) error {
	query := `
		INSERT INTO payments (patient_id, amount, description, method, date, status, receipt_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`
	var patientID interface{}
	if payment.PatientID != 0 {
		patientID = payment.PatientID
	}
	result, err := r.db.Exec(query, patientID, payment.Amount, payment.Description,
		payment.Method, payment.Date, payment.Status, payment.ReceiptURL)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	payment.ID = id
	return nil
}
