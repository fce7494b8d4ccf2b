package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/movecrm/backoffice/internal/config"
	"github.com/movecrm/backoffice/internal/domain/repository"
)

// Module wires the audit trail storage. Without a configured database
// the audit log degrades to a no-op sink.
var Module = fx.Provide(newAuditLog)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newAuditLog(lc fx.Lifecycle, p storageParams) (repository.AuditLog, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Info("audit trail disabled, no database configured")
		return NopAuditLog{}, nil
	}

	storage, err := New(p.Ctx, p.Config.DatabaseURI, p.Logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})

	return storage.Audit(), nil
}
