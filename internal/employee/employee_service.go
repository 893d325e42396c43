package employee

import (
	"context"
	"fmt"
	"time"

	"go-payroll/internal/audit"
	"go-payroll/internal/department"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/events"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/store"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) []EmployeeResponse
	GetByID(ctx context.Context, id int) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id int, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	employees   *store.Collection[Employee]
	remote      Remote
	departments department.Service
	recorder    audit.Recorder
	publisher   EventPublisher
	actor       string
	logger      *zap.Logger
}

func NewService(
	employees *store.Collection[Employee],
	remote Remote,
	departments department.Service,
	recorder audit.Recorder,
	publisher EventPublisher,
	actor string,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if publisher == nil {
		publisher = NewNoopEventPublisher()
	}
	return &service{
		employees:   employees,
		remote:      remote,
		departments: departments,
		recorder:    recorder,
		publisher:   publisher,
		actor:       actor,
		logger:      l,
	}
}

func (s *service) performedBy(ctx context.Context) string {
	if actor := contextutil.GetActor(ctx); actor != "" {
		return actor
	}
	return s.actor
}

func (s *service) GetAll(ctx context.Context) []EmployeeResponse {
	return mapToListResponse(s.employees.List())
}

func (s *service) GetByID(ctx context.Context, id int) (EmployeeResponse, error) {
	e, ok := s.employees.Get(id)
	if !ok {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	return mapToResponse(e), nil
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("department", req.Department),
	)

	dateHired, err := time.Parse(dateLayout, req.DateHired)
	if err != nil {
		s.logger.Warn("create employee invalid dateHired",
			zap.String("request_id", rid),
			zap.String("dateHired", req.DateHired),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateHired
	}

	// The remote service keys employees by department id, the rest of
	// this system by department name. Resolution is degraded-but-available:
	// it always yields some id, never an error.
	departmentID := s.departments.ResolveID(ctx, req.Department)

	e := Employee{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Position:      req.Position,
		Department:    req.Department,
		DateHired:     dateHired,
		Salary:        req.Salary,
		MaritalStatus: req.MaritalStatus,
	}

	remoteID, err := s.remote.Create(ctx, e, departmentID)
	if err != nil {
		s.logger.Error("create employee remote call failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	e.ID = remoteID
	e = s.employees.Insert(e)

	s.recorder.Record(ctx, "Create",
		fmt.Sprintf("Created employee: %s", e.FullName()),
		s.performedBy(ctx),
	)

	event := events.EmployeeCreatedEvent{
		EventType:  "employee_created",
		RequestID:  rid,
		EmployeeID: e.ID,
		Department: e.Department,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishEmployeeCreated(ctx, event); err != nil {
		// Lifecycle events are best effort; the create already happened.
		s.logger.Warn("publish employee created event failed",
			zap.String("request_id", rid),
			zap.Int("employee_id", e.ID),
			zap.Error(err),
		)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int("employee_id", e.ID),
	)
	return mapToResponse(e), nil
}

func (s *service) Update(
	ctx context.Context,
	id int,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if _, ok := s.employees.Get(id); !ok {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	var dateHired time.Time
	if req.DateHired != nil {
		var err error
		dateHired, err = time.Parse(dateLayout, *req.DateHired)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidDateHired
		}
	}

	if err := s.remote.Update(ctx, id, req); err != nil {
		s.logger.Error("update employee remote call failed",
			zap.String("request_id", rid),
			zap.Int("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	e, _ := s.employees.Replace(id, func(e *Employee) {
		if req.FirstName != nil {
			e.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			e.LastName = *req.LastName
		}
		if req.Position != nil {
			e.Position = *req.Position
		}
		if req.Department != nil {
			e.Department = *req.Department
		}
		if req.DateHired != nil {
			e.DateHired = dateHired
		}
		if req.Salary != nil {
			e.Salary = *req.Salary
		}
		if req.MaritalStatus != nil {
			e.MaritalStatus = *req.MaritalStatus
		}
	})

	s.recorder.Record(ctx, "Update",
		fmt.Sprintf("Updated employee ID: %d", id),
		s.performedBy(ctx),
	)

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.Int("employee_id", id),
	)
	return mapToResponse(e), nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	rid := contextutil.GetRequestID(ctx)

	if _, ok := s.employees.Get(id); !ok {
		return employeeerrors.ErrEmployeeNotFound
	}

	if err := s.remote.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee remote call failed",
			zap.String("request_id", rid),
			zap.Int("employee_id", id),
			zap.Error(err),
		)
		return err
	}

	// Payslips and allowances referencing this employee are left in
	// place with dangling ids; read paths tolerate the gap.
	s.employees.Remove(id)

	s.recorder.Record(ctx, "Delete",
		fmt.Sprintf("Deleted employee ID: %d", id),
		s.performedBy(ctx),
	)

	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.Int("employee_id", id),
	)
	return nil
}
