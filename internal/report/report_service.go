package report

import (
	"context"
	"strings"

	"go-payroll/internal/allowance"
	"go-payroll/internal/employee"
	"go-payroll/internal/payslip"
	"go-payroll/internal/store"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Service aggregates over the live collections. All three reports are pure
// reads; nothing here touches the remote or the audit trail.
type Service interface {
	PayrollSummary(ctx context.Context, period, department string) PayrollSummaryResponse
	EmployeeReport(ctx context.Context, department string) EmployeeReportResponse
	AllowanceReport(ctx context.Context) AllowanceReportResponse
}

type service struct {
	employees  *store.Collection[employee.Employee]
	payslips   *store.Collection[payslip.Payslip]
	allowances *store.Collection[allowance.Allowance]
	logger     *zap.Logger
}

func NewService(
	employees *store.Collection[employee.Employee],
	payslips *store.Collection[payslip.Payslip],
	allowances *store.Collection[allowance.Allowance],
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		employees:  employees,
		payslips:   payslips,
		allowances: allowances,
		logger:     l,
	}
}

// PayrollSummary rolls filtered payslips up by the department of their
// employee. Payslips whose employee no longer exists carry no department
// and are excluded from the rollups and the grand total alike.
func (s *service) PayrollSummary(ctx context.Context, period, department string) PayrollSummaryResponse {
	employees := s.employees.List()
	payslips := s.payslips.List()

	employeeByID := make(map[int]employee.Employee, len(employees))
	for _, e := range employees {
		employeeByID[e.ID] = e
	}

	// Department order follows first appearance among employees.
	var departments []string
	seen := make(map[string]bool)
	headcount := make(map[string]int)
	for _, e := range employees {
		if !seen[e.Department] {
			seen[e.Department] = true
			departments = append(departments, e.Department)
		}
		headcount[e.Department]++
	}

	rollups := make(map[string]*DepartmentRollup)
	for _, dept := range departments {
		rollups[dept] = &DepartmentRollup{
			Department:    dept,
			EmployeeCount: headcount[dept],
		}
	}

	var grand PayrollSummaryTotal
	for _, p := range payslips {
		if period != "" && !strings.HasPrefix(p.Period, period) {
			continue
		}
		e, ok := employeeByID[p.EmployeeID]
		if !ok {
			continue
		}
		r := rollups[e.Department]
		r.TotalGross += p.GrossSalary
		r.TotalDeductions += p.TotalDeductions
		r.TotalNet += p.NetSalary
		grand.TotalGross += p.GrossSalary
		grand.TotalDeductions += p.TotalDeductions
		grand.TotalNet += p.NetSalary
	}
	grand.EmployeeCount = len(employees)

	resp := PayrollSummaryResponse{
		Period:     period,
		Department: department,
		GrandTotal: grand,
	}
	for _, dept := range departments {
		if department != "" && dept != department {
			continue
		}
		resp.Departments = append(resp.Departments, *rollups[dept])
	}
	if resp.Departments == nil {
		resp.Departments = []DepartmentRollup{}
	}
	return resp
}

func (s *service) EmployeeReport(ctx context.Context, department string) EmployeeReportResponse {
	var rows []EmployeeReportRow
	var totalSalary float64
	for _, e := range s.employees.List() {
		if department != "" && e.Department != department {
			continue
		}
		rows = append(rows, EmployeeReportRow{
			ID:         e.ID,
			Name:       e.FullName(),
			Position:   e.Position,
			Department: e.Department,
			DateHired:  e.DateHired.Format(dateLayout),
			Salary:     e.Salary,
		})
		totalSalary += e.Salary
	}
	if rows == nil {
		rows = []EmployeeReportRow{}
	}

	avg := 0.0
	if len(rows) > 0 {
		avg = totalSalary / float64(len(rows))
	}
	return EmployeeReportResponse{
		Department:    department,
		Employees:     rows,
		TotalCount:    len(rows),
		AverageSalary: avg,
	}
}

func (s *service) AllowanceReport(ctx context.Context) AllowanceReportResponse {
	employees := s.employees.List()
	employeeByID := make(map[int]employee.Employee, len(employees))
	for _, e := range employees {
		employeeByID[e.ID] = e
	}

	allowances := s.allowances.List()
	rows := make([]AllowanceReportRow, len(allowances))
	for i, a := range allowances {
		name := "Unknown"
		if e, ok := employeeByID[a.EmployeeID]; ok {
			name = e.FullName()
		}
		rows[i] = AllowanceReportRow{
			ID:                a.ID,
			EmployeeName:      name,
			AllowanceTypeName: a.AllowanceTypeName,
			Amount:            a.Amount,
			IsPercentage:      a.IsPercentage,
		}
	}
	return AllowanceReportResponse{
		Allowances: rows,
		TotalCount: len(rows),
	}
}
