package allowance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/allowance"
	allowanceerrors "go-payroll/internal/allowance/errors"
	"go-payroll/internal/allowancetype"
	"go-payroll/internal/audit"
	"go-payroll/internal/employee"
	"go-payroll/internal/store"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRemote struct {
	createFn func(ctx context.Context, a allowance.Allowance) (int, error)
	updateFn func(ctx context.Context, id int, req allowance.UpdateAllowanceRequest) error
	deleteFn func(ctx context.Context, id int) error
}

func (f *fakeRemote) List(ctx context.Context) ([]allowance.Allowance, error) {
	return nil, nil
}

func (f *fakeRemote) Create(ctx context.Context, a allowance.Allowance) (int, error) {
	if f.createFn != nil {
		return f.createFn(ctx, a)
	}
	return 0, nil
}

func (f *fakeRemote) Update(ctx context.Context, id int, req allowance.UpdateAllowanceRequest) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, req)
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
	allowances *store.Collection[allowance.Allowance]
	employees  *store.Collection[employee.Employee]
	types      *store.Collection[allowancetype.AllowanceType]
	remote     *fakeRemote
	recorder   *fakeRecorder
	service    allowance.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()

	st := store.New()
	allowances := store.NewCollection(st,
		func(a allowance.Allowance) int { return a.ID },
		func(a *allowance.Allowance, id int) { a.ID = id },
	)
	employees := store.NewCollection(st,
		func(e employee.Employee) int { return e.ID },
		func(e *employee.Employee, id int) { e.ID = id },
	)
	types := store.NewCollection(st,
		func(at allowancetype.AllowanceType) int { return at.ID },
		func(at *allowancetype.AllowanceType, id int) { at.ID = id },
	)
	remote := &fakeRemote{}
	recorder := &fakeRecorder{}
	svc := allowance.NewService(allowances, employees, types, remote, recorder, "Admin", zap.NewNop())

	employees.SetAll([]employee.Employee{{ID: 1, FirstName: "John", LastName: "Doe"}})
	types.SetAll([]allowancetype.AllowanceType{
		{ID: 2, Name: "Degree", IsPercentage: true},
	})

	return &serviceDeps{
		allowances: allowances,
		employees:  employees,
		types:      types,
		remote:     remote,
		recorder:   recorder,
		service:    svc,
	}
}

func TestAllowanceService_Create_SnapshotsTypeFields(t *testing.T) {
	deps := setupServiceTest(t)
	deps.remote.createFn = func(ctx context.Context, a allowance.Allowance) (int, error) {
		return 8, nil
	}

	resp, err := deps.service.Create(context.Background(), allowance.CreateAllowanceRequest{
		EmployeeID:      1,
		AllowanceTypeID: 2,
		Amount:          10,
	})

	assert.NoError(t, err)
	assert.Equal(t, 8, resp.ID)
	assert.Equal(t, "Degree", resp.AllowanceTypeName)
	assert.True(t, resp.IsPercentage)

	assert.Len(t, deps.recorder.entries, 1)
	assert.Equal(t, "Created allowance for employee ID: 1", deps.recorder.entries[0].Details)
}

func TestAllowanceService_Create_UnknownEmployee(t *testing.T) {
	deps := setupServiceTest(t)

	_, err := deps.service.Create(context.Background(), allowance.CreateAllowanceRequest{
		EmployeeID:      99,
		AllowanceTypeID: 2,
	})

	assert.ErrorIs(t, err, allowanceerrors.ErrAllowanceEmployeeNotFound)
}

func TestAllowanceService_Create_UnknownType(t *testing.T) {
	deps := setupServiceTest(t)

	_, err := deps.service.Create(context.Background(), allowance.CreateAllowanceRequest{
		EmployeeID:      1,
		AllowanceTypeID: 99,
	})

	assert.ErrorIs(t, err, allowanceerrors.ErrAllowanceTypeNotFound)
}

func TestAllowanceService_Create_RemoteFailureLeavesStoreUntouched(t *testing.T) {
	deps := setupServiceTest(t)
	deps.remote.createFn = func(ctx context.Context, a allowance.Allowance) (int, error) {
		return 0, errors.New("remote down")
	}

	_, err := deps.service.Create(context.Background(), allowance.CreateAllowanceRequest{
		EmployeeID:      1,
		AllowanceTypeID: 2,
	})

	assert.Error(t, err)
	assert.Equal(t, 0, deps.allowances.Len())
	assert.Empty(t, deps.recorder.entries)
}

func TestAllowanceService_SnapshotSurvivesTypeChanges(t *testing.T) {
	deps := setupServiceTest(t)
	deps.remote.createFn = func(ctx context.Context, a allowance.Allowance) (int, error) {
		return 8, nil
	}

	_, err := deps.service.Create(context.Background(), allowance.CreateAllowanceRequest{
		EmployeeID:      1,
		AllowanceTypeID: 2,
		Amount:          10,
	})
	assert.NoError(t, err)

	// Renaming and even deleting the type afterwards must not rewrite the
	// snapshot taken at creation time.
	deps.types.Replace(2, func(at *allowancetype.AllowanceType) { at.Name = "Diploma" })
	resp, err := deps.service.GetByID(context.Background(), 8)
	assert.NoError(t, err)
	assert.Equal(t, "Degree", resp.AllowanceTypeName)

	deps.types.Remove(2)
	resp, err = deps.service.GetByID(context.Background(), 8)
	assert.NoError(t, err)
	assert.Equal(t, "Degree", resp.AllowanceTypeName)
	assert.True(t, resp.IsPercentage)
}

func TestAllowanceService_Update(t *testing.T) {
	deps := setupServiceTest(t)
	deps.allowances.SetAll([]allowance.Allowance{{
		ID: 8, EmployeeID: 1, AllowanceTypeID: 2, AllowanceTypeName: "Degree",
		Amount: 10, IsPercentage: true,
	}})

	amount := 15.0
	resp, err := deps.service.Update(context.Background(), 8, allowance.UpdateAllowanceRequest{
		Amount: &amount,
	})

	assert.NoError(t, err)
	assert.Equal(t, 15.0, resp.Amount)
	assert.Equal(t, "Degree", resp.AllowanceTypeName)
	assert.Len(t, deps.recorder.entries, 1)
	assert.Equal(t, "Updated allowance ID: 8", deps.recorder.entries[0].Details)
}

func TestAllowanceService_Update_NotFound(t *testing.T) {
	deps := setupServiceTest(t)

	amount := 15.0
	_, err := deps.service.Update(context.Background(), 99, allowance.UpdateAllowanceRequest{Amount: &amount})

	assert.ErrorIs(t, err, allowanceerrors.ErrAllowanceNotFound)
}

func TestAllowanceService_Delete(t *testing.T) {
	deps := setupServiceTest(t)
	deps.allowances.SetAll([]allowance.Allowance{{ID: 8, EmployeeID: 1}})

	err := deps.service.Delete(context.Background(), 8)

	assert.NoError(t, err)
	assert.Equal(t, 0, deps.allowances.Len())
	assert.Equal(t, "Deleted allowance ID: 8", deps.recorder.entries[0].Details)
}
