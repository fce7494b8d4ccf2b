package dto

import (
	"encoding/json"
	"time"

	"github.com/movecrm/backoffice/internal/domain/model"
)

// AuditEntryResponse is one audit trail row.
type AuditEntryResponse struct {
	ID         int64           `json:"id"`
	OrderID    int64           `json:"orderId"`
	Action     string          `json:"action"`
	Payload    json.RawMessage `json:"payload"`
	RecordedAt time.Time       `json:"recordedAt"`
}

// FromAuditEntries converts audit entries to their response form.
func FromAuditEntries(entries []model.AuditEntry) []AuditEntryResponse {
	out := make([]AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, AuditEntryResponse{
			ID:         e.ID,
			OrderID:    e.OrderID,
			Action:     e.Action,
			Payload:    json.RawMessage(e.Payload),
			RecordedAt: e.RecordedAt,
		})
	}
	return out
}
