package allowancetypeerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrAllowanceTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Allowance type not found",
		http.StatusNotFound,
	)
)
