package employee_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/audit"
	auditmock "go-payroll/internal/audit/mock"
	"go-payroll/internal/department"
	departmentmock "go-payroll/internal/department/mock"
	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	employeemock "go-payroll/internal/employee/mock"
	"go-payroll/internal/events"
	"go-payroll/internal/store"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type capturingPublisher struct {
	events []events.EmployeeCreatedEvent
	err    error
}

func (p *capturingPublisher) PublishEmployeeCreated(ctx context.Context, event events.EmployeeCreatedEvent) error {
	p.events = append(p.events, event)
	return p.err
}

type serviceDeps struct {
	ctrl        *gomock.Controller
	employees   *store.Collection[employee.Employee]
	remote      *employeemock.MockRemote
	departments *departmentmock.MockService
	recorder    *auditmock.MockRecorder
	publisher   *capturingPublisher
	service     employee.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	employees := store.NewCollection(store.New(),
		func(e employee.Employee) int { return e.ID },
		func(e *employee.Employee, id int) { e.ID = id },
	)
	remote := employeemock.NewMockRemote(ctrl)
	departments := departmentmock.NewMockService(ctrl)
	recorder := auditmock.NewMockRecorder(ctrl)
	publisher := &capturingPublisher{}
	svc := employee.NewService(employees, remote, departments, recorder, publisher, "Admin", zap.NewNop())

	return &serviceDeps{
		ctrl:        ctrl,
		employees:   employees,
		remote:      remote,
		departments: departments,
		recorder:    recorder,
		publisher:   publisher,
		service:     svc,
	}
}

func TestEmployeeService_Create(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	req := employee.CreateEmployeeRequest{
		FirstName:     "John",
		LastName:      "Doe",
		Email:         "john.doe@seraphworld.edu",
		Position:      "Teacher",
		Department:    "Elementary",
		DateHired:     "2022-01-15",
		Salary:        45000,
		MaritalStatus: "single",
	}

	deps.departments.EXPECT().ResolveID(ctx, "Elementary").Return(4)
	deps.remote.EXPECT().
		Create(ctx, gomock.Any(), 4).
		DoAndReturn(func(ctx context.Context, e employee.Employee, departmentID int) (int, error) {
			assert.Equal(t, "john.doe@seraphworld.edu", e.Email)
			assert.Equal(t, time.Date(2022, 1, 15, 0, 0, 0, 0, time.UTC), e.DateHired)
			return 7, nil
		})
	deps.recorder.EXPECT().
		Record(ctx, "Create", "Created employee: John Doe", "Admin").
		Return(audit.AuditLog{ID: 1})

	resp, err := deps.service.Create(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, 7, resp.ID)
	assert.Equal(t, "2022-01-15", resp.DateHired)

	_, ok := deps.employees.Get(7)
	assert.True(t, ok)

	assert.Len(t, deps.publisher.events, 1)
	assert.Equal(t, 7, deps.publisher.events[0].EmployeeID)
	assert.Equal(t, "Elementary", deps.publisher.events[0].Department)
}

func TestEmployeeService_Create_InvalidDateHired(t *testing.T) {
	deps := setupServiceTest(t)

	_, err := deps.service.Create(context.Background(), employee.CreateEmployeeRequest{
		FirstName:     "John",
		LastName:      "Doe",
		Email:         "john@x.test",
		Department:    "Elementary",
		DateHired:     "15-01-2022",
		MaritalStatus: "single",
	})

	assert.ErrorIs(t, err, employeeerrors.ErrInvalidDateHired)
}

func TestEmployeeService_Create_RemoteFailureLeavesStoreUntouched(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.departments.EXPECT().ResolveID(ctx, "Elementary").Return(department.FallbackDepartmentID)
	deps.remote.EXPECT().
		Create(ctx, gomock.Any(), department.FallbackDepartmentID).
		Return(0, errors.New("remote down"))

	_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
		FirstName:     "John",
		LastName:      "Doe",
		Email:         "john@x.test",
		Department:    "Elementary",
		DateHired:     "2022-01-15",
		MaritalStatus: "single",
	})

	assert.Error(t, err)
	assert.Equal(t, 0, deps.employees.Len())
	assert.Empty(t, deps.publisher.events)
}

func TestEmployeeService_Create_PublishFailureDoesNotFailCreate(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	deps.publisher.err = errors.New("kafka down")

	deps.departments.EXPECT().ResolveID(ctx, "Elementary").Return(4)
	deps.remote.EXPECT().Create(ctx, gomock.Any(), 4).Return(9, nil)
	deps.recorder.EXPECT().
		Record(ctx, "Create", "Created employee: John Doe", "Admin").
		Return(audit.AuditLog{ID: 1})

	resp, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
		FirstName:     "John",
		LastName:      "Doe",
		Email:         "john@x.test",
		Department:    "Elementary",
		DateHired:     "2022-01-15",
		MaritalStatus: "single",
	})

	assert.NoError(t, err)
	assert.Equal(t, 9, resp.ID)
}

func TestEmployeeService_Update(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	deps.employees.SetAll([]employee.Employee{{
		ID: 2, FirstName: "Jane", LastName: "Smith", Department: "Management",
		Salary: 55000, MaritalStatus: "married",
	}})

	salary := 60000.0
	req := employee.UpdateEmployeeRequest{Salary: &salary}

	deps.remote.EXPECT().Update(ctx, 2, req).Return(nil)
	deps.recorder.EXPECT().
		Record(ctx, "Update", "Updated employee ID: 2", "Admin").
		Return(audit.AuditLog{ID: 1})

	resp, err := deps.service.Update(ctx, 2, req)

	assert.NoError(t, err)
	assert.Equal(t, 60000.0, resp.Salary)
	assert.Equal(t, "Jane", resp.FirstName, "untouched fields survive a partial update")
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	deps := setupServiceTest(t)

	_, err := deps.service.Update(context.Background(), 99, employee.UpdateEmployeeRequest{})

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestEmployeeService_Delete(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	deps.employees.SetAll([]employee.Employee{{ID: 2, FirstName: "Jane", LastName: "Smith"}})

	deps.remote.EXPECT().Delete(ctx, 2).Return(nil)
	deps.recorder.EXPECT().
		Record(ctx, "Delete", "Deleted employee ID: 2", "Admin").
		Return(audit.AuditLog{ID: 1})

	err := deps.service.Delete(ctx, 2)

	assert.NoError(t, err)
	assert.Equal(t, 0, deps.employees.Len())
}

func TestEmployeeService_Delete_RemoteFailureKeepsEmployee(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	deps.employees.SetAll([]employee.Employee{{ID: 2}})

	deps.remote.EXPECT().Delete(ctx, 2).Return(errors.New("remote down"))

	err := deps.service.Delete(ctx, 2)

	assert.Error(t, err)
	assert.Equal(t, 1, deps.employees.Len())
}
