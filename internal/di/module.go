package di

import (
	"go.uber.org/fx"

	"github.com/movecrm/backoffice/internal/adapter/events"
	"github.com/movecrm/backoffice/internal/adapter/orderstore"
	"github.com/movecrm/backoffice/internal/app"
	"github.com/movecrm/backoffice/internal/cache"
	"github.com/movecrm/backoffice/internal/config"
	"github.com/movecrm/backoffice/internal/editor"
	"github.com/movecrm/backoffice/internal/logger"
	"github.com/movecrm/backoffice/internal/pkg/auth"
	"github.com/movecrm/backoffice/internal/server/http/router"
	"github.com/movecrm/backoffice/internal/servicetype"
	"github.com/movecrm/backoffice/internal/storage/postgres"
	"github.com/movecrm/backoffice/internal/usecase"
)

// Module assembles the full application graph. Callers may append
// options, typically replacements in tests.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		orderstore.Module,
		servicetype.Module,
		cache.Module,
		editor.Module,
		postgres.Module,
		events.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
