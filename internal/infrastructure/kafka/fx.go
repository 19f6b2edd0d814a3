package kafka

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Conte777/MediaGrab/config"
	"github.com/Conte777/MediaGrab/internal/domain/media/deps"
)

// Module provides the download event publisher for fx DI
var Module = fx.Module("kafka",
	fx.Provide(providePublisher),
)

// providePublisher picks the Kafka producer when brokers are configured
func providePublisher(lc fx.Lifecycle, cfg *config.KafkaConfig, logger zerolog.Logger) (deps.EventPublisher, error) {
	log := logger.With().Str("component", "kafka_producer").Logger()

	if !cfg.EventsEnabled() {
		log.Info().Msg("KAFKA_BROKERS is empty, download events are disabled")
		return nopPublisher{}, nil
	}

	producer, err := NewProducer(cfg, log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return producer.Close()
		},
	})

	return producer, nil
}
