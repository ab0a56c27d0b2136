package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Publisher writes directory events to a Kafka topic.
type Publisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewPublisher(brokers []string, topic string, logger ...*zap.Logger) *Publisher {
	l := zap.L().Named("kafka.publisher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.publisher")
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
		logger: l,
	}
}

func (p *Publisher) Publish(ctx context.Context, key string, payload []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Time:  time.Now().UTC(),
	})
}

func (p *Publisher) Close() {
	if err := p.writer.Close(); err != nil {
		p.logger.Warn("close writer failed", zap.Error(err))
	}
}
