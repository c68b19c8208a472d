package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/aminebt/khadamat/internal/models"
)

type KafkaNotifier struct {
	writer *kafka.Writer
}

func NewKafkaNotifier(address, topic string) *KafkaNotifier {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(address),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaNotifier{writer: w}
}

func (n *KafkaNotifier) RequestReceived(ctx context.Context, request models.Request) error {
	event := map[string]any{
		"type":     "request_created",
		"id":       request.ID,
		"username": request.Username,
		"service":  request.Service,
		"quantity": request.Quantity,
		"link":     request.Link,
		"notes":    request.Notes,
		"date":     request.Date,
		"summary":  Summary(request),
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka: marshal event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(request.Username),
		Value: data,
	}
	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: write message: %w", err)
	}
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
