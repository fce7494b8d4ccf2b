package servicetype

import (
	"context"

	"go.uber.org/fx"

	"github.com/movecrm/backoffice/internal/adapter/orderstore"
	"github.com/movecrm/backoffice/internal/config"
)

// Module provides the codec, configured from a local file when one is
// set and from the backend enumeration otherwise.
var Module = fx.Provide(newCodec)

type codecParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Client orderstore.Client
}

func newCodec(p codecParams) (*Codec, error) {
	if p.Config.ServiceTypesFile != "" {
		types, err := LoadFile(p.Config.ServiceTypesFile)
		if err != nil {
			return nil, err
		}
		return NewCodec(types)
	}

	types, err := p.Client.ServiceTypes(p.Ctx)
	if err != nil {
		return nil, err
	}
	return NewCodec(types)
}
