// Package kafka contains the Kafka download event publisher
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"

	"github.com/Conte777/MediaGrab/config"
	"github.com/Conte777/MediaGrab/internal/domain/media/deps"
	"github.com/Conte777/MediaGrab/internal/domain/media/entities"
)

// Producer implements deps.EventPublisher
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	logger   zerolog.Logger
}

// NewProducer creates a Kafka producer for download events
func NewProducer(cfg *config.KafkaConfig, logger zerolog.Logger) (*Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Info().Strs("brokers", cfg.Brokers).Str("topic", cfg.DownloadsTopic).Msg("Kafka producer initialized successfully")

	return newProducer(producer, cfg.DownloadsTopic, logger), nil
}

func newProducer(producer sarama.SyncProducer, topic string, logger zerolog.Logger) *Producer {
	return &Producer{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// PublishDownload sends a download event keyed by user id
func (p *Producer) PublishDownload(ctx context.Context, event *entities.DownloadEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	jsonData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event to JSON: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.UserID, 10)),
		Value: sarama.ByteEncoder(jsonData),
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		p.logger.Error().Err(err).Str("topic", p.topic).Msg("Failed to send Kafka message")
		return err
	}

	p.logger.Debug().
		Str("topic", p.topic).
		Str("event_id", event.ID).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Kafka message sent successfully")

	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	if p.producer == nil {
		return nil
	}
	if err := p.producer.Close(); err != nil {
		p.logger.Error().Err(err).Msg("Failed to close Kafka producer")
		return err
	}
	p.logger.Info().Msg("Kafka producer closed successfully")
	return nil
}

// nopPublisher drops events when no brokers are configured
type nopPublisher struct{}

func (nopPublisher) PublishDownload(context.Context, *entities.DownloadEvent) error { return nil }

func (nopPublisher) Close() error { return nil }

var (
	_ deps.EventPublisher = (*Producer)(nil)
	_ deps.EventPublisher = nopPublisher{}
)
