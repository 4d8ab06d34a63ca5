package kafka

import (
	"Terrace/internal/api/config"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

type ModerationProducer interface {
	PublishModerationEvent(ctx context.Context, event *ModerationEvent) error
	Close() error
}

type moderationProducerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

func NewModerationProducer(cfg config.KafkaConfig) (ModerationProducer, error) {
	producer, err := sarama.NewSyncProducer(cfg.Brokers, newSaramaConfig(cfg))
	if err != nil {
		return nil, errors.Wrap(err, "create kafka producer failed")
	}

	log.Info("Kafka producer initialized", "topic", cfg.Producer.ModerationTopic)
	return &moderationProducerImpl{
		producer: producer,
		topic:    cfg.Producer.ModerationTopic,
	}, nil
}

// PublishModerationEvent 同一举报的事件按 report_id 分区，保证消费端看到的顺序
func (s *moderationProducerImpl) PublishModerationEvent(ctx context.Context, event *ModerationEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal moderation event failed")
	}

	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(event.ReportID, 10)),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := s.producer.SendMessage(msg)
	if err != nil {
		return errors.Wrap(err, "send moderation event failed")
	}

	log.InfoContext(ctx, "moderation event published",
		"type", event.EventType,
		"report_id", event.ReportID,
		"partition", partition,
		"offset", offset)
	return nil
}

func (s *moderationProducerImpl) Close() error {
	return s.producer.Close()
}
