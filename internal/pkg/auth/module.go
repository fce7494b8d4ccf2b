package auth

import (
	"go.uber.org/fx"

	"github.com/movecrm/backoffice/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(func() CredentialVerifier { return NewBcryptVerifier(0) }),
	fx.Provide(func(cfg *config.Config) TokenStrategy {
		return NewHMACStrategy(cfg.AuthSecret, Options{})
	}),
)
