package storage

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"digital-menu/internal/domain"
)

// KafkaChannel posts staff notifications to a Kafka topic, keyed by table so
// one table's messages stay ordered within a partition. The payment asset
// rides inside the JSON payload as base64.
type KafkaChannel struct {
	Writer *kafka.Writer
}

func NewKafkaChannel(writer *kafka.Writer) *KafkaChannel {
	return &KafkaChannel{Writer: writer}
}

func (c *KafkaChannel) Send(ctx context.Context, n domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return c.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(n.Table),
		Value: payload,
	})
}
