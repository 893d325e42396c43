package allowance

import (
	"context"
	"fmt"

	allowanceerrors "go-payroll/internal/allowance/errors"
	"go-payroll/internal/allowancetype"
	"go-payroll/internal/audit"
	"go-payroll/internal/employee"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/store"

	"go.uber.org/zap"
)

//go:generate mockgen -source=allowance_service.go -destination=mock/allowance_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) []AllowanceResponse
	GetByID(ctx context.Context, id int) (AllowanceResponse, error)
	Create(ctx context.Context, req CreateAllowanceRequest) (AllowanceResponse, error)
	Update(ctx context.Context, id int, req UpdateAllowanceRequest) (AllowanceResponse, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	allowances *store.Collection[Allowance]
	employees  *store.Collection[employee.Employee]
	types      *store.Collection[allowancetype.AllowanceType]
	remote     Remote
	recorder   audit.Recorder
	actor      string
	logger     *zap.Logger
}

func NewService(
	allowances *store.Collection[Allowance],
	employees *store.Collection[employee.Employee],
	types *store.Collection[allowancetype.AllowanceType],
	remote Remote,
	recorder audit.Recorder,
	actor string,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("allowance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("allowance.service")
	}
	return &service{
		allowances: allowances,
		employees:  employees,
		types:      types,
		remote:     remote,
		recorder:   recorder,
		actor:      actor,
		logger:     l,
	}
}

func (s *service) performedBy(ctx context.Context) string {
	if actor := contextutil.GetActor(ctx); actor != "" {
		return actor
	}
	return s.actor
}

func (s *service) GetAll(ctx context.Context) []AllowanceResponse {
	return mapToListResponse(s.allowances.List())
}

func (s *service) GetByID(ctx context.Context, id int) (AllowanceResponse, error) {
	a, ok := s.allowances.Get(id)
	if !ok {
		return AllowanceResponse{}, allowanceerrors.ErrAllowanceNotFound
	}
	return mapToResponse(a), nil
}

func (s *service) Create(
	ctx context.Context,
	req CreateAllowanceRequest,
) (AllowanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create allowance requested",
		zap.String("request_id", rid),
		zap.Int("employee_id", req.EmployeeID),
		zap.Int("allowance_type_id", req.AllowanceTypeID),
	)

	if _, ok := s.employees.Get(req.EmployeeID); !ok {
		return AllowanceResponse{}, allowanceerrors.ErrAllowanceEmployeeNotFound
	}
	at, ok := s.types.Get(req.AllowanceTypeID)
	if !ok {
		return AllowanceResponse{}, allowanceerrors.ErrAllowanceTypeNotFound
	}

	// Name and percentage flag are copied from the type as it exists right
	// now; later edits to the type do not propagate back.
	a := Allowance{
		EmployeeID:        req.EmployeeID,
		AllowanceTypeID:   req.AllowanceTypeID,
		AllowanceTypeName: at.Name,
		Amount:            req.Amount,
		IsPercentage:      at.IsPercentage,
	}

	remoteID, err := s.remote.Create(ctx, a)
	if err != nil {
		s.logger.Error("create allowance remote call failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return AllowanceResponse{}, err
	}

	a.ID = remoteID
	a = s.allowances.Insert(a)

	s.recorder.Record(ctx, "Create",
		fmt.Sprintf("Created allowance for employee ID: %d", a.EmployeeID),
		s.performedBy(ctx),
	)

	s.logger.Info("create allowance success",
		zap.String("request_id", rid),
		zap.Int("allowance_id", a.ID),
	)
	return mapToResponse(a), nil
}

func (s *service) Update(
	ctx context.Context,
	id int,
	req UpdateAllowanceRequest,
) (AllowanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if _, ok := s.allowances.Get(id); !ok {
		return AllowanceResponse{}, allowanceerrors.ErrAllowanceNotFound
	}

	if err := s.remote.Update(ctx, id, req); err != nil {
		s.logger.Error("update allowance remote call failed",
			zap.String("request_id", rid),
			zap.Int("allowance_id", id),
			zap.Error(err),
		)
		return AllowanceResponse{}, err
	}

	a, _ := s.allowances.Replace(id, func(a *Allowance) {
		if req.Amount != nil {
			a.Amount = *req.Amount
		}
	})

	s.recorder.Record(ctx, "Update",
		fmt.Sprintf("Updated allowance ID: %d", id),
		s.performedBy(ctx),
	)

	s.logger.Info("update allowance success",
		zap.String("request_id", rid),
		zap.Int("allowance_id", id),
	)
	return mapToResponse(a), nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	rid := contextutil.GetRequestID(ctx)

	if _, ok := s.allowances.Get(id); !ok {
		return allowanceerrors.ErrAllowanceNotFound
	}

	if err := s.remote.Delete(ctx, id); err != nil {
		s.logger.Error("delete allowance remote call failed",
			zap.String("request_id", rid),
			zap.Int("allowance_id", id),
			zap.Error(err),
		)
		return err
	}

	s.allowances.Remove(id)

	s.recorder.Record(ctx, "Delete",
		fmt.Sprintf("Deleted allowance ID: %d", id),
		s.performedBy(ctx),
	)

	s.logger.Info("delete allowance success",
		zap.String("request_id", rid),
		zap.Int("allowance_id", id),
	)
	return nil
}
