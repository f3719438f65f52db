package repository

import (
	"database/sql"

	"clinic-manager/internal/database"
	"clinic-manager/internal/models"
)

type ExpenseRepository interface {
	GetAll() ([]models.Expense, error)
	GetByID(id int64) (*models.Expense, error)
	Create(expense *models.Expense) error
	Update(id int64, expense *models.Expense) error
	Delete(id int64) error
}

type expenseRepository struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) GetAll() ([]models.Expense, error) {
	query := `
		SELECT id, type, amount, COALESCE(notes, ''), date, created_at, updated_at
		FROM expenses
		ORDER BY date DESC, id DESC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		err := rows.Scan(&e.ID, &e.Type, &e.Amount, &e.Notes, &e.Date, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (r *expenseRepository) GetByID(id int64) (*models.Expense, error) {
	query := `
		SELECT id, type, amount, COALESCE(notes, ''), date, created_at, updated_at
		FROM expenses WHERE id = ?
	`
	var e models.Expense
	err := r.db.QueryRow(query, id).Scan(&e.ID, &e.Type, &e.Amount, &e.Notes, &e.Date, &e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrExpenseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *expenseRepository) Create(expense *models.Expense) error {
	query := `
		INSERT INTO expenses (type, amount, notes, date, created_at, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`
	result, err := r.db.Exec(query, expense.Type, expense.Amount, expense.Notes, expense.Date)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	expense.ID = id
	return nil
}

func (r *expenseRepository) Update(id int64, expense *models.Expense) error {
	query := `
		UPDATE expenses
		SET type = ?, amount = ?, notes = ?, date = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	result, err := r.db.Exec(query, expense.Type, expense.Amount, expense.Notes, expense.Date, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrExpenseNotFound
	}
	expense.ID = id
	return nil
}

func (r *expenseRepository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}
