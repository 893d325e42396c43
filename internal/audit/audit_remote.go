package audit

import (
	"context"

	"go-payroll/internal/remote"
)

// wireAuditLog is the snake_case shape the persistence service expects.
type wireAuditLog struct {
	Action      string `json:"action"`
	Details     string `json:"details"`
	PerformedBy string `json:"performed_by"`
}

//go:generate mockgen -source=audit_remote.go -destination=mock/audit_remote_mock.go -package=mock
type Remote interface {
	Create(ctx context.Context, entry AuditLog) error
}

type httpRemote struct {
	client *remote.Client
}

func NewRemote(client *remote.Client) Remote {
	return &httpRemote{client: client}
}

func (r *httpRemote) Create(ctx context.Context, entry AuditLog) error {
	payload := wireAuditLog{
		Action:      entry.Action,
		Details:     entry.Details,
		PerformedBy: entry.PerformedBy,
	}
	return r.client.Post(ctx, "/audit-logs/", payload, nil)
}
