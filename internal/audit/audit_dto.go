package audit

import "time"

type AuditLogResponse struct {
	ID          int    `json:"id"`
	Action      string `json:"action"`
	Details     string `json:"details"`
	PerformedBy string `json:"performedBy"`
	Timestamp   string `json:"timestamp"`
}

func mapToResponse(entry AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:          entry.ID,
		Action:      entry.Action,
		Details:     entry.Details,
		PerformedBy: entry.PerformedBy,
		Timestamp:   entry.Timestamp.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(entries []AuditLog) []AuditLogResponse {
	resp := make([]AuditLogResponse, len(entries))
	for i, entry := range entries {
		resp[i] = mapToResponse(entry)
	}
	return resp
}
