package editor

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/movecrm/backoffice/internal/adapter/orderstore"
	"github.com/movecrm/backoffice/internal/cache"
	"github.com/movecrm/backoffice/internal/servicetype"
)

// Module wires the edit workflow into the fx graph.
var Module = fx.Provide(newWorkflow)

type workflowParams struct {
	fx.In

	Client orderstore.Client
	Cache  *cache.OrderCollection
	Codec  *servicetype.Codec
	Logger *slog.Logger
}

func newWorkflow(p workflowParams) *Workflow {
	return NewWorkflow(p.Client, p.Cache, p.Codec, p.Logger)
}
