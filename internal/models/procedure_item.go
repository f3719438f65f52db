// internal/models/procedure_item.go
package models

// ProcedureItem is a priced catalog entry ("X-Ray", "Extraction") used to
// prefill treatment rows.
type ProcedureItem struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Price       Money  `json:"price"`
}
