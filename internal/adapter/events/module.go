package events

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/movecrm/backoffice/internal/config"
)

// Module wires the order event publisher. Without configured brokers
// events are discarded.
var Module = fx.Provide(newPublisher)

func newPublisher(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("order events disabled, no brokers configured")
		return NopPublisher{}
	}

	publisher := NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}
