package repository

import (
	"context"

	"github.com/movecrm/backoffice/internal/domain/model"
)

// AuditFilter narrows audit listings. A zero OrderID means all orders;
// a zero Limit means no cap.
type AuditFilter struct {
	OrderID int64
	Limit   int
}

// AuditLog records the mutations the backoffice transmits to the order
// store and serves them back for review.
type AuditLog interface {
	Record(ctx context.Context, entry model.AuditEntry) (*model.AuditEntry, error)
	List(ctx context.Context, filter AuditFilter) ([]model.AuditEntry, error)
}
