package repository

import "errors"

var (
	ErrPatientNotFound      = errors.New("patient not found")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrExpenseNotFound      = errors.New("expense not found")
	ErrTreatmentNotFound    = errors.New("treatment table not found")
	ErrTreatmentRowNotFound = errors.New("treatment row not found")
	ErrDentalRecordNotFound = errors.New("dental record not found")
	ErrProcedureNotFound    = errors.New("procedure item not found")
)
