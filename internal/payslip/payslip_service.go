package payslip

import (
	"context"
	"fmt"
	"time"

	"go-payroll/internal/audit"
	"go-payroll/internal/employee"
	paysliperrors "go-payroll/internal/payslip/errors"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/store"
	"go-payroll/internal/tax"

	"go.uber.org/zap"
)

const periodLayout = "2006-01"

//go:generate mockgen -source=payslip_service.go -destination=mock/payslip_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) []PayslipResponse
	GetByID(ctx context.Context, id int) (PayslipResponse, error)
	Create(ctx context.Context, req CreatePayslipRequest) (PayslipResponse, error)
	Update(ctx context.Context, id int, req UpdatePayslipRequest) (PayslipResponse, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	payslips  *store.Collection[Payslip]
	employees *store.Collection[employee.Employee]
	remote    Remote
	recorder  audit.Recorder
	actor     string
	logger    *zap.Logger
}

func NewService(
	payslips *store.Collection[Payslip],
	employees *store.Collection[employee.Employee],
	remote Remote,
	recorder audit.Recorder,
	actor string,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payslip.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.service")
	}
	return &service{
		payslips:  payslips,
		employees: employees,
		remote:    remote,
		recorder:  recorder,
		actor:     actor,
		logger:    l,
	}
}

func (s *service) performedBy(ctx context.Context) string {
	if actor := contextutil.GetActor(ctx); actor != "" {
		return actor
	}
	return s.actor
}

// maritalStatusFor resolves the employee's marital status for the tax
// computation, defaulting to single when the employee is gone.
func (s *service) maritalStatusFor(employeeID int) string {
	if e, ok := s.employees.Get(employeeID); ok {
		return e.MaritalStatus
	}
	return tax.MaritalStatusSingle
}

func (s *service) GetAll(ctx context.Context) []PayslipResponse {
	return mapToListResponse(s.payslips.List())
}

func (s *service) GetByID(ctx context.Context, id int) (PayslipResponse, error) {
	p, ok := s.payslips.Get(id)
	if !ok {
		return PayslipResponse{}, paysliperrors.ErrPayslipNotFound
	}
	return mapToResponse(p), nil
}

func (s *service) Create(
	ctx context.Context,
	req CreatePayslipRequest,
) (PayslipResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create payslip requested",
		zap.String("request_id", rid),
		zap.Int("employee_id", req.EmployeeID),
		zap.String("period", req.Period),
	)

	if _, err := time.Parse(periodLayout, req.Period); err != nil {
		return PayslipResponse{}, paysliperrors.ErrInvalidPeriod
	}

	emp, ok := s.employees.Get(req.EmployeeID)
	if !ok {
		return PayslipResponse{}, paysliperrors.ErrPayslipEmployeeNotFound
	}

	status := req.Status
	if status == "" {
		status = StatusDraft
	}
	if status == StatusPaid && (req.PaymentDate == nil || *req.PaymentDate == "") {
		return PayslipResponse{}, paysliperrors.ErrPaymentDateRequired
	}

	// Derived figures are always recomputed here, never accepted from
	// the caller.
	taxAmount := tax.Monthly(req.GrossSalary, emp.MaritalStatus)
	p := Payslip{
		EmployeeID:      req.EmployeeID,
		EmployeeName:    emp.FullName(),
		Period:          req.Period,
		GrossSalary:     req.GrossSalary,
		TotalDeductions: req.TotalDeductions,
		TaxAmount:       taxAmount,
		NetSalary:       tax.NetSalary(req.GrossSalary, req.TotalDeductions, taxAmount),
		Status:          status,
		PaymentDate:     req.PaymentDate,
	}

	remoteID, err := s.remote.Create(ctx, p)
	if err != nil {
		s.logger.Error("create payslip remote call failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return PayslipResponse{}, err
	}

	p.ID = remoteID
	p = s.payslips.Insert(p)

	s.recorder.Record(ctx, "Create",
		fmt.Sprintf("Created payslip for employee ID: %d", p.EmployeeID),
		s.performedBy(ctx),
	)

	s.logger.Info("create payslip success",
		zap.String("request_id", rid),
		zap.Int("payslip_id", p.ID),
	)
	return mapToResponse(p), nil
}

func (s *service) Update(
	ctx context.Context,
	id int,
	req UpdatePayslipRequest,
) (PayslipResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	current, ok := s.payslips.Get(id)
	if !ok {
		return PayslipResponse{}, paysliperrors.ErrPayslipNotFound
	}

	merged := current
	if req.Period != nil {
		if _, err := time.Parse(periodLayout, *req.Period); err != nil {
			return PayslipResponse{}, paysliperrors.ErrInvalidPeriod
		}
		merged.Period = *req.Period
	}
	if req.GrossSalary != nil {
		merged.GrossSalary = *req.GrossSalary
	}
	if req.TotalDeductions != nil {
		merged.TotalDeductions = *req.TotalDeductions
	}
	if req.Status != nil {
		merged.Status = *req.Status
	}
	if req.PaymentDate != nil {
		merged.PaymentDate = req.PaymentDate
	}

	if merged.Status == StatusPaid && (merged.PaymentDate == nil || *merged.PaymentDate == "") {
		return PayslipResponse{}, paysliperrors.ErrPaymentDateRequired
	}

	merged.TaxAmount = tax.Monthly(merged.GrossSalary, s.maritalStatusFor(merged.EmployeeID))
	merged.NetSalary = tax.NetSalary(merged.GrossSalary, merged.TotalDeductions, merged.TaxAmount)

	if err := s.remote.Update(ctx, id, merged); err != nil {
		s.logger.Error("update payslip remote call failed",
			zap.String("request_id", rid),
			zap.Int("payslip_id", id),
			zap.Error(err),
		)
		return PayslipResponse{}, err
	}

	p, _ := s.payslips.Replace(id, func(p *Payslip) {
		*p = merged
	})

	s.recorder.Record(ctx, "Update",
		fmt.Sprintf("Updated payslip ID: %d", id),
		s.performedBy(ctx),
	)

	s.logger.Info("update payslip success",
		zap.String("request_id", rid),
		zap.Int("payslip_id", id),
	)
	return mapToResponse(p), nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	rid := contextutil.GetRequestID(ctx)

	if _, ok := s.payslips.Get(id); !ok {
		return paysliperrors.ErrPayslipNotFound
	}

	if err := s.remote.Delete(ctx, id); err != nil {
		s.logger.Error("delete payslip remote call failed",
			zap.String("request_id", rid),
			zap.Int("payslip_id", id),
			zap.Error(err),
		)
		return err
	}

	s.payslips.Remove(id)

	s.recorder.Record(ctx, "Delete",
		fmt.Sprintf("Deleted payslip ID: %d", id),
		s.performedBy(ctx),
	)

	s.logger.Info("delete payslip success",
		zap.String("request_id", rid),
		zap.Int("payslip_id", id),
	)
	return nil
}
