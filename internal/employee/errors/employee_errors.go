package employeeerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidDateHired = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid dateHired format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
