package allowanceerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrAllowanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Allowance not found",
		http.StatusNotFound,
	)
	ErrAllowanceEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Employee for allowance not found",
		http.StatusBadRequest,
	)
	ErrAllowanceTypeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Allowance type for allowance not found",
		http.StatusBadRequest,
	)
)
