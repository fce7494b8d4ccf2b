package router

import (
	"go.uber.org/fx"

	"github.com/movecrm/backoffice/internal/app"
	"github.com/movecrm/backoffice/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(func(facade *app.BackofficeFacade) handlers.BackofficeFacade { return facade }),
	fx.Provide(Setup),
)
