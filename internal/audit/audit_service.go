package audit

import (
	"context"
	"time"

	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/store"

	"go.uber.org/zap"
)

//go:generate mockgen -source=audit_service.go -destination=mock/audit_service_mock.go -package=mock

// Recorder appends one audit entry per mutation. Record always succeeds
// from the caller's point of view: the entry is written to the session
// store first and the remote write is best effort only.
type Recorder interface {
	Record(ctx context.Context, action, details, performedBy string) AuditLog
}

type Service interface {
	Recorder
	List(ctx context.Context) []AuditLogResponse
}

type service struct {
	entries *store.Collection[AuditLog]
	remote  Remote
	logger  *zap.Logger
}

func NewService(entries *store.Collection[AuditLog], remote Remote, logger ...*zap.Logger) Service {
	l := zap.L().Named("audit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.service")
	}
	return &service{
		entries: entries,
		remote:  remote,
		logger:  l,
	}
}

func (s *service) Record(
	ctx context.Context,
	action, details, performedBy string,
) AuditLog {
	// Local append comes first so the entry is visible to the session no
	// matter what the remote does. The zero id makes the store assign the
	// next strictly increasing local id.
	entry := s.entries.Insert(AuditLog{
		Action:      action,
		Details:     details,
		PerformedBy: performedBy,
		Timestamp:   time.Now().UTC(),
	})

	if err := s.remote.Create(ctx, entry); err != nil {
		// The one place a remote failure is swallowed: audit visibility in
		// the current session must not depend on the remote being up.
		s.logger.Warn("remote audit write failed, keeping local entry",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Int("audit_id", entry.ID),
			zap.String("action", action),
			zap.Error(err),
		)
	}

	return entry
}

func (s *service) List(ctx context.Context) []AuditLogResponse {
	return mapToListResponse(s.entries.ListDesc())
}
