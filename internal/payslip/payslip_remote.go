package payslip

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go-payroll/internal/remote"
)

// The persistence service stores payroll records keyed by month/year with
// attendance defaults this layer does not track. Gross salary is not part
// of the wire record; it is reconstructed as net + tax + deductions.
const (
	defaultDaysWorked = 30
)

type wirePayrollRecord struct {
	ID           int     `json:"id,omitempty"`
	Employee     int     `json:"employee,omitempty"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Month        int     `json:"month,omitempty"`
	Year         int     `json:"year,omitempty"`
	DaysWorked   int     `json:"days_worked,omitempty"`
	Deductions   float64 `json:"deductions"`
	Tax          float64 `json:"tax"`
	NetSalary    float64 `json:"net_salary"`
	Status       string  `json:"status,omitempty"`
	PaymentDate  *string `json:"payment_date,omitempty"`
}

//go:generate mockgen -source=payslip_remote.go -destination=mock/payslip_remote_mock.go -package=mock
type Remote interface {
	List(ctx context.Context) ([]Payslip, error)
	// Create returns the remote-assigned id, 0 when the response omits one.
	Create(ctx context.Context, p Payslip) (int, error)
	Update(ctx context.Context, id int, p Payslip) error
	Delete(ctx context.Context, id int) error
}

type httpRemote struct {
	client *remote.Client
}

func NewRemote(client *remote.Client) Remote {
	return &httpRemote{client: client}
}

func (r *httpRemote) List(ctx context.Context) ([]Payslip, error) {
	var wire []wirePayrollRecord
	if err := r.client.Get(ctx, "/payroll-records/", &wire); err != nil {
		return nil, err
	}

	payslips := make([]Payslip, len(wire))
	for i, w := range wire {
		payslips[i] = Payslip{
			ID:              w.ID,
			EmployeeID:      w.Employee,
			EmployeeName:    w.EmployeeName,
			Period:          fmt.Sprintf("%04d-%02d", w.Year, w.Month),
			GrossSalary:     w.NetSalary + w.Tax + w.Deductions,
			TotalDeductions: w.Deductions,
			TaxAmount:       w.Tax,
			NetSalary:       w.NetSalary,
			Status:          w.Status,
			PaymentDate:     w.PaymentDate,
		}
	}
	return payslips, nil
}

func (r *httpRemote) Create(ctx context.Context, p Payslip) (int, error) {
	year, month := splitPeriod(p.Period)
	payload := wirePayrollRecord{
		Employee:    p.EmployeeID,
		Month:       month,
		Year:        year,
		DaysWorked:  defaultDaysWorked,
		Deductions:  p.TotalDeductions,
		Tax:         p.TaxAmount,
		NetSalary:   p.NetSalary,
		Status:      p.Status,
		PaymentDate: p.PaymentDate,
	}

	var created wirePayrollRecord
	if err := r.client.Post(ctx, "/payroll-records/", payload, &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (r *httpRemote) Update(ctx context.Context, id int, p Payslip) error {
	year, month := splitPeriod(p.Period)
	payload := wirePayrollRecord{
		Month:       month,
		Year:        year,
		Deductions:  p.TotalDeductions,
		Tax:         p.TaxAmount,
		NetSalary:   p.NetSalary,
		Status:      p.Status,
		PaymentDate: p.PaymentDate,
	}

	return r.client.Patch(ctx, fmt.Sprintf("/payroll-records/%d/", id), payload, nil)
}

func (r *httpRemote) Delete(ctx context.Context, id int) error {
	return r.client.Delete(ctx, fmt.Sprintf("/payroll-records/%d/", id))
}

func splitPeriod(period string) (year, month int) {
	parts := strings.SplitN(period, "-", 2)
	if len(parts) == 2 {
		year, _ = strconv.Atoi(parts[0])
		month, _ = strconv.Atoi(parts[1])
	}
	return year, month
}
