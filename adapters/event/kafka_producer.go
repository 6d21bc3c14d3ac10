package event

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/asher09/me-api/internal/config"
)

const TopicProfileEvents = "profile.events"

const (
	ProfileEventTypeCreated = "profile.created"
	ProfileEventTypeUpdated = "profile.updated"
)

// ProfileEventPayload is the message written to profile.events on every
// successful profile write. Consumers are analytics-side; nothing in this
// service depends on them.
type ProfileEventPayload struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	ProfileID  int64     `json:"profile_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type ProfileEventProducer struct {
	writer *kafka.Writer
}

func NewProfileEventProducer(cfg config.Config) (*ProfileEventProducer, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicProfileEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &ProfileEventProducer{writer: writer}, nil
}

func (p *ProfileEventProducer) Publish(ctx context.Context, eventType string, profileID int64) error {
	payload := ProfileEventPayload{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		ProfileID:  profileID,
		OccurredAt: time.Now().UTC(),
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal profile event failed: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(profileID, 10)),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("write profile event failed: %w", err)
	}
	return nil
}

func (p *ProfileEventProducer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
