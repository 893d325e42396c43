package audit

import "time"

// AuditLog is append-only: entries are never updated or deleted by the
// normal flow, and local ids are strictly increasing.
type AuditLog struct {
	ID          int
	Action      string
	Details     string
	PerformedBy string
	Timestamp   time.Time
}
