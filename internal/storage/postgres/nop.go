package postgres

import (
	"context"

	"github.com/movecrm/backoffice/internal/domain/model"
	"github.com/movecrm/backoffice/internal/domain/repository"
)

// NopAuditLog discards audit entries. It backs deployments that run
// without a database.
type NopAuditLog struct{}

func (NopAuditLog) Record(ctx context.Context, entry model.AuditEntry) (*model.AuditEntry, error) {
	return &entry, nil
}

func (NopAuditLog) List(ctx context.Context, filter repository.AuditFilter) ([]model.AuditEntry, error) {
	return nil, nil
}
