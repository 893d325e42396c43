package allowancetype

import (
	"context"
	"fmt"

	allowancetypeerrors "go-payroll/internal/allowancetype/errors"
	"go-payroll/internal/audit"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/store"

	"go.uber.org/zap"
)

//go:generate mockgen -source=allowance_type_service.go -destination=mock/allowance_type_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) []AllowanceTypeResponse
	GetByID(ctx context.Context, id int) (AllowanceTypeResponse, error)
	Create(ctx context.Context, req CreateAllowanceTypeRequest) (AllowanceTypeResponse, error)
	Update(ctx context.Context, id int, req UpdateAllowanceTypeRequest) (AllowanceTypeResponse, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	types    *store.Collection[AllowanceType]
	remote   Remote
	recorder audit.Recorder
	actor    string
	logger   *zap.Logger
}

func NewService(
	types *store.Collection[AllowanceType],
	remote Remote,
	recorder audit.Recorder,
	actor string,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("allowancetype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("allowancetype.service")
	}
	return &service{
		types:    types,
		remote:   remote,
		recorder: recorder,
		actor:    actor,
		logger:   l,
	}
}

func (s *service) performedBy(ctx context.Context) string {
	if actor := contextutil.GetActor(ctx); actor != "" {
		return actor
	}
	return s.actor
}

func (s *service) GetAll(ctx context.Context) []AllowanceTypeResponse {
	return mapToListResponse(s.types.List())
}

func (s *service) GetByID(ctx context.Context, id int) (AllowanceTypeResponse, error) {
	at, ok := s.types.Get(id)
	if !ok {
		return AllowanceTypeResponse{}, allowancetypeerrors.ErrAllowanceTypeNotFound
	}
	return mapToResponse(at), nil
}

func (s *service) Create(
	ctx context.Context,
	req CreateAllowanceTypeRequest,
) (AllowanceTypeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create allowance type requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	at := AllowanceType{
		Name:         req.Name,
		IsPercentage: req.IsPercentage,
		Description:  req.Description,
	}

	// Remote first: if the persistence call fails the local collection is
	// left untouched so the cache never claims something persisted.
	remoteID, err := s.remote.Create(ctx, at)
	if err != nil {
		s.logger.Error("create allowance type remote call failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return AllowanceTypeResponse{}, err
	}

	at.ID = remoteID
	at = s.types.Insert(at)

	s.recorder.Record(ctx, "Create",
		fmt.Sprintf("Created allowance type: %s", at.Name),
		s.performedBy(ctx),
	)

	s.logger.Info("create allowance type success",
		zap.String("request_id", rid),
		zap.Int("allowance_type_id", at.ID),
	)
	return mapToResponse(at), nil
}

func (s *service) Update(
	ctx context.Context,
	id int,
	req UpdateAllowanceTypeRequest,
) (AllowanceTypeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if _, ok := s.types.Get(id); !ok {
		return AllowanceTypeResponse{}, allowancetypeerrors.ErrAllowanceTypeNotFound
	}

	if err := s.remote.Update(ctx, id, req); err != nil {
		s.logger.Error("update allowance type remote call failed",
			zap.String("request_id", rid),
			zap.Int("allowance_type_id", id),
			zap.Error(err),
		)
		return AllowanceTypeResponse{}, err
	}

	at, _ := s.types.Replace(id, func(at *AllowanceType) {
		if req.Name != nil {
			at.Name = *req.Name
		}
		if req.IsPercentage != nil {
			at.IsPercentage = *req.IsPercentage
		}
		if req.Description != nil {
			at.Description = *req.Description
		}
	})

	s.recorder.Record(ctx, "Update",
		fmt.Sprintf("Updated allowance type ID: %d", id),
		s.performedBy(ctx),
	)

	s.logger.Info("update allowance type success",
		zap.String("request_id", rid),
		zap.Int("allowance_type_id", id),
	)
	return mapToResponse(at), nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	rid := contextutil.GetRequestID(ctx)

	if _, ok := s.types.Get(id); !ok {
		return allowancetypeerrors.ErrAllowanceTypeNotFound
	}

	if err := s.remote.Delete(ctx, id); err != nil {
		s.logger.Error("delete allowance type remote call failed",
			zap.String("request_id", rid),
			zap.Int("allowance_type_id", id),
			zap.Error(err),
		)
		return err
	}

	// Allowances referencing this type keep their snapshotted name and
	// flag; no cascade at this layer.
	s.types.Remove(id)

	s.recorder.Record(ctx, "Delete",
		fmt.Sprintf("Deleted allowance type ID: %d", id),
		s.performedBy(ctx),
	)

	s.logger.Info("delete allowance type success",
		zap.String("request_id", rid),
		zap.Int("allowance_type_id", id),
	)
	return nil
}
