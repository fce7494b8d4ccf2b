package cache

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/movecrm/backoffice/internal/adapter/orderstore"
)

// Module wires the order cache into the fx graph.
var Module = fx.Provide(newOrderCollection)

type cacheParams struct {
	fx.In

	Client orderstore.Client
	Logger *slog.Logger
}

func newOrderCollection(p cacheParams) *OrderCollection {
	return NewOrderCollection(p.Client, p.Logger)
}
