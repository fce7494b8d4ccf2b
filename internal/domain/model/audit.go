package model

import "time"

// Audit actions recorded after a successful remote mutation.
const (
	AuditActionSave   = "SAVE"
	AuditActionDelete = "DELETE"
)

// AuditEntry is one row of the local edit audit trail.
type AuditEntry struct {
	ID         int64
	OrderID    int64
	Action     string
	Payload    []byte
	RecordedAt time.Time
}
