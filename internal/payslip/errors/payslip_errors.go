package paysliperrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payslip not found",
		http.StatusNotFound,
	)
	ErrPayslipEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Payslip references an unknown employee",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid period format, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrPaymentDateRequired = apperror.New(
		apperror.CodeInvalidState,
		"paymentDate is required when status is paid",
		http.StatusBadRequest,
	)
)
