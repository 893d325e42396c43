package payslip_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/audit"
	"go-payroll/internal/employee"
	"go-payroll/internal/payslip"
	paysliperrors "go-payroll/internal/payslip/errors"
	"go-payroll/internal/store"
	"go-payroll/internal/tax"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRemote struct {
	listFn   func(ctx context.Context) ([]payslip.Payslip, error)
	createFn func(ctx context.Context, p payslip.Payslip) (int, error)
	updateFn func(ctx context.Context, id int, p payslip.Payslip) error
	deleteFn func(ctx context.Context, id int) error
}

func (f *fakeRemote) List(ctx context.Context) ([]payslip.Payslip, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func (f *fakeRemote) Create(ctx context.Context, p payslip.Payslip) (int, error) {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	return 0, nil
}

func (f *fakeRemote) Update(ctx context.Context, id int, p payslip.Payslip) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, p)
	}
	return nil
}

func (f *fakeRemote) Delete(ctx context.Context, id int) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeRecorder struct {
	entries []audit.AuditLog
}

func (f *fakeRecorder) Record(ctx context.Context, action, details, performedBy string) audit.AuditLog {
	entry := audit.AuditLog{
		ID:          len(f.entries) + 1,
		Action:      action,
		Details:     details,
		PerformedBy: performedBy,
		Timestamp:   time.Now().UTC(),
	}
	f.entries = append(f.entries, entry)
	return entry
}

type serviceDeps struct {
	payslips  *store.Collection[payslip.Payslip]
	employees *store.Collection[employee.Employee]
	remote    *fakeRemote
	recorder  *fakeRecorder
	service   payslip.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()

	st := store.New()
	payslips := store.NewCollection(st,
		func(p payslip.Payslip) int { return p.ID },
		func(p *payslip.Payslip, id int) { p.ID = id },
	)
	employees := store.NewCollection(st,
		func(e employee.Employee) int { return e.ID },
		func(e *employee.Employee, id int) { e.ID = id },
	)
	remote := &fakeRemote{}
	recorder := &fakeRecorder{}
	svc := payslip.NewService(payslips, employees, remote, recorder, "Admin", zap.NewNop())

	return &serviceDeps{
		payslips:  payslips,
		employees: employees,
		remote:    remote,
		recorder:  recorder,
		service:   svc,
	}
}

func seedEmployee(deps *serviceDeps, maritalStatus string) {
	deps.employees.SetAll([]employee.Employee{{
		ID:            1,
		FirstName:     "John",
		LastName:      "Doe",
		Department:    "Elementary",
		Salary:        45000,
		MaritalStatus: maritalStatus,
	}})
}

func TestPayslipService_Create_DerivesTaxAndNet(t *testing.T) {
	deps := setupServiceTest(t)
	seedEmployee(deps, "single")
	deps.remote.createFn = func(ctx context.Context, p payslip.Payslip) (int, error) {
		return 3, nil
	}

	resp, err := deps.service.Create(context.Background(), payslip.CreatePayslipRequest{
		EmployeeID:      1,
		Period:          "2024-03",
		GrossSalary:     50000,
		TotalDeductions: 4500,
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, resp.ID)
	assert.Equal(t, "John Doe", resp.EmployeeName)
	assert.Equal(t, payslip.StatusDraft, resp.Status)

	wantTax := tax.Monthly(50000, tax.MaritalStatusSingle)
	assert.InDelta(t, wantTax, resp.TaxAmount, 1e-9)
	assert.InDelta(t, 50000-4500-wantTax, resp.NetSalary, 1e-9)
}

func TestPayslipService_Create_MarriedUsesMarriedBracket(t *testing.T) {
	deps := setupServiceTest(t)
	seedEmployee(deps, "married")

	resp, err := deps.service.Create(context.Background(), payslip.CreatePayslipRequest{
		EmployeeID:  1,
		Period:      "2024-03",
		GrossSalary: 50000,
	})

	assert.NoError(t, err)
	assert.InDelta(t, tax.Monthly(50000, tax.MaritalStatusMarried), resp.TaxAmount, 1e-9)
}

func TestPayslipService_Create_UnknownEmployee(t *testing.T) {
	deps := setupServiceTest(t)

	_, err := deps.service.Create(context.Background(), payslip.CreatePayslipRequest{
		EmployeeID: 99,
		Period:     "2024-03",
	})

	assert.ErrorIs(t, err, paysliperrors.ErrPayslipEmployeeNotFound)
}

func TestPayslipService_Create_InvalidPeriod(t *testing.T) {
	deps := setupServiceTest(t)
	seedEmployee(deps, "single")

	_, err := deps.service.Create(context.Background(), payslip.CreatePayslipRequest{
		EmployeeID: 1,
		Period:     "March 2024",
	})

	assert.ErrorIs(t, err, paysliperrors.ErrInvalidPeriod)
}

func TestPayslipService_Create_PaidRequiresPaymentDate(t *testing.T) {
	deps := setupServiceTest(t)
	seedEmployee(deps, "single")

	_, err := deps.service.Create(context.Background(), payslip.CreatePayslipRequest{
		EmployeeID: 1,
		Period:     "2024-03",
		Status:     payslip.StatusPaid,
	})
	assert.ErrorIs(t, err, paysliperrors.ErrPaymentDateRequired)

	paymentDate := "2024-03-28"
	resp, err := deps.service.Create(context.Background(), payslip.CreatePayslipRequest{
		EmployeeID:  1,
		Period:      "2024-03",
		Status:      payslip.StatusPaid,
		PaymentDate: &paymentDate,
	})
	assert.NoError(t, err)
	assert.Equal(t, payslip.StatusPaid, resp.Status)
	assert.Equal(t, "2024-03-28", *resp.PaymentDate)
}

func TestPayslipService_Create_RemoteFailureLeavesStoreUntouched(t *testing.T) {
	deps := setupServiceTest(t)
	seedEmployee(deps, "single")
	deps.remote.createFn = func(ctx context.Context, p payslip.Payslip) (int, error) {
		return 0, errors.New("remote down")
	}

	_, err := deps.service.Create(context.Background(), payslip.CreatePayslipRequest{
		EmployeeID: 1,
		Period:     "2024-03",
	})

	assert.Error(t, err)
	assert.Equal(t, 0, deps.payslips.Len())
	assert.Empty(t, deps.recorder.entries, "no audit entry for a failed mutation")
}

func TestPayslipService_Update_AlwaysRecomputesDerivedFigures(t *testing.T) {
	deps := setupServiceTest(t)
	seedEmployee(deps, "single")
	deps.payslips.SetAll([]payslip.Payslip{{
		ID:           5,
		EmployeeID:   1,
		EmployeeName: "John Doe",
		Period:       "2024-03",
		GrossSalary:  50000,
		Status:       payslip.StatusDraft,
	}})

	gross := 80000.0
	resp, err := deps.service.Update(context.Background(), 5, payslip.UpdatePayslipRequest{
		GrossSalary: &gross,
	})

	assert.NoError(t, err)
	wantTax := tax.Monthly(80000, tax.MaritalStatusSingle)
	assert.InDelta(t, wantTax, resp.TaxAmount, 1e-9)
	assert.InDelta(t, 80000-wantTax, resp.NetSalary, 1e-9)
	assert.Len(t, deps.recorder.entries, 1)
	assert.Equal(t, "Updated payslip ID: 5", deps.recorder.entries[0].Details)
}

func TestPayslipService_Update_DeletedEmployeeDefaultsToSingle(t *testing.T) {
	deps := setupServiceTest(t)
	// Employee 1 is gone; the payslip keeps its dangling reference and the
	// snapshotted name.
	deps.payslips.SetAll([]payslip.Payslip{{
		ID:           5,
		EmployeeID:   1,
		EmployeeName: "John Doe",
		Period:       "2024-03",
		GrossSalary:  50000,
		Status:       payslip.StatusDraft,
	}})

	gross := 60000.0
	resp, err := deps.service.Update(context.Background(), 5, payslip.UpdatePayslipRequest{
		GrossSalary: &gross,
	})

	assert.NoError(t, err)
	assert.Equal(t, "John Doe", resp.EmployeeName)
	assert.InDelta(t, tax.Monthly(60000, tax.MaritalStatusSingle), resp.TaxAmount, 1e-9)
}

func TestPayslipService_Update_PaidRequiresPaymentDate(t *testing.T) {
	deps := setupServiceTest(t)
	seedEmployee(deps, "single")
	deps.payslips.SetAll([]payslip.Payslip{{
		ID:         5,
		EmployeeID: 1,
		Period:     "2024-03",
		Status:     payslip.StatusApproved,
	}})

	paid := payslip.StatusPaid
	_, err := deps.service.Update(context.Background(), 5, payslip.UpdatePayslipRequest{
		Status: &paid,
	})
	assert.ErrorIs(t, err, paysliperrors.ErrPaymentDateRequired)

	paymentDate := "2024-03-28"
	resp, err := deps.service.Update(context.Background(), 5, payslip.UpdatePayslipRequest{
		Status:      &paid,
		PaymentDate: &paymentDate,
	})
	assert.NoError(t, err)
	assert.Equal(t, payslip.StatusPaid, resp.Status)
}

func TestPayslipService_Update_RemoteFailureLeavesStoreUntouched(t *testing.T) {
	deps := setupServiceTest(t)
	seedEmployee(deps, "single")
	deps.payslips.SetAll([]payslip.Payslip{{
		ID:          5,
		EmployeeID:  1,
		Period:      "2024-03",
		GrossSalary: 50000,
		Status:      payslip.StatusDraft,
	}})
	deps.remote.updateFn = func(ctx context.Context, id int, p payslip.Payslip) error {
		return errors.New("remote down")
	}

	gross := 80000.0
	_, err := deps.service.Update(context.Background(), 5, payslip.UpdatePayslipRequest{
		GrossSalary: &gross,
	})

	assert.Error(t, err)
	stored, _ := deps.payslips.Get(5)
	assert.Equal(t, 50000.0, stored.GrossSalary)
	assert.Empty(t, deps.recorder.entries)
}

func TestPayslipService_Delete(t *testing.T) {
	deps := setupServiceTest(t)
	deps.payslips.SetAll([]payslip.Payslip{{ID: 5, EmployeeID: 1}})

	err := deps.service.Delete(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, 0, deps.payslips.Len())
	assert.Len(t, deps.recorder.entries, 1)
	assert.Equal(t, "Deleted payslip ID: 5", deps.recorder.entries[0].Details)
}

func TestPayslipService_Delete_NotFound(t *testing.T) {
	deps := setupServiceTest(t)

	err := deps.service.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, paysliperrors.ErrPayslipNotFound)
}
