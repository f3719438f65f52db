package repository

import (
	"clinic-manager/internal/database"
	"clinic-manager/internal/models"
)

type ProcedureRepository interface {
	GetAll() ([]models.ProcedureItem, error)
	Create(item *models.ProcedureItem) error
	Update(id int64, item *models.ProcedureItem) error
	Delete(id int64) error
}

type procedureRepository struct {
	db *database.DB
}

func NewProcedureRepository(db *database.DB) ProcedureRepository {
	return &procedureRepository{db: db}
}

func (r *procedureRepository) GetAll() ([]models.ProcedureItem, error) {
	rows, err := r.db.Query("SELECT id, description, price FROM procedure_items ORDER BY description ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.ProcedureItem
	for rows.Next() {
		var item models.ProcedureItem
		if err := rows.Scan(&item.ID, &item.Description, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *procedureRepository) Create(item *models.ProcedureItem) error {
	result, err := r.db.Exec("INSERT INTO procedure_items (description, price) VALUES (?, ?)",
		item.Description, item.Price)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	item.ID = id
	return nil
}

func (r *procedureRepository) Update(id int64, item *models.ProcedureItem) error {
	result, err := r.db.Exec("UPDATE procedure_items SET description = ?, price = ? WHERE id = ?",
		item.Description, item.Price, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProcedureNotFound
	}
	item.ID = id
	return nil
}

func (r *procedureRepository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM procedure_items WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProcedureNotFound
	}
	return nil
}
