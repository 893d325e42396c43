package department

import (
	"context"
	"encoding/json"
	"time"

	"go-payroll/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	optionsCacheKey = "departments:options"
	optionsCacheTTL = 30 * time.Minute

	// FallbackDepartmentID is substituted when the department lookup
	// itself fails. Degraded but available: employee creation must not
	// be blocked by a broken lookup.
	FallbackDepartmentID = 1
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetOptions(ctx context.Context) ([]DepartmentResponse, error)
	ResolveID(ctx context.Context, name string) int
}

type service struct {
	remote Remote
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(remote Remote, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{
		remote: remote,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	depts, err := s.remote.List(ctx)
	if err != nil {
		s.logger.Error("list departments failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(depts), nil
}

// GetOptions is the cached read used for dropdowns and name resolution.
// Concurrent cache misses are coalesced into a single remote call.
func (s *service) GetOptions(ctx context.Context) ([]DepartmentResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, optionsCacheKey).Result(); err == nil {
			var resp []DepartmentResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	result, err, _ := s.sf.Do(optionsCacheKey, func() (any, error) {
		depts, err := s.remote.List(ctx)
		if err != nil {
			return nil, err
		}
		resp := mapToListResponse(depts)

		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, optionsCacheKey, payload, optionsCacheTTL).Err(); err != nil {
					s.logger.Warn("failed to cache department options", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]DepartmentResponse), nil
}

// ResolveID maps a department name to its remote id: exact match wins,
// an unknown name falls back to the first available department, and a
// failed lookup falls back to FallbackDepartmentID. Never an error.
func (s *service) ResolveID(ctx context.Context, name string) int {
	rid := contextutil.GetRequestID(ctx)

	depts, err := s.GetOptions(ctx)
	if err != nil {
		s.logger.Warn("department lookup failed, using fallback id",
			zap.String("request_id", rid),
			zap.String("department", name),
			zap.Int("fallback_id", FallbackDepartmentID),
			zap.Error(err),
		)
		return FallbackDepartmentID
	}

	for _, d := range depts {
		if d.Name == name {
			return d.ID
		}
	}

	if len(depts) > 0 {
		s.logger.Warn("department name not found, using first available",
			zap.String("request_id", rid),
			zap.String("department", name),
			zap.Int("resolved_id", depts[0].ID),
		)
		return depts[0].ID
	}

	s.logger.Warn("no departments available, using fallback id",
		zap.String("request_id", rid),
		zap.String("department", name),
		zap.Int("fallback_id", FallbackDepartmentID),
	)
	return FallbackDepartmentID
}
