package services

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"github.com/sbilibin2017/feedback-board/internal/logger"
	"github.com/sbilibin2017/feedback-board/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishEvent publishes a board event to Kafka. Publishing is best-effort:
// a nil writer or a broker error never fails the request.
func publishEvent(ctx context.Context, w KafkaWriter, ev models.Event) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", ev.EventID)
		return
	}

	data, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", ev.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(ev.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", ev.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", ev.EventID, "type", ev.Type)
	}
}
