// Package kafka publishes journal domain events to Kafka.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
	"github.com/heartmarshall/tagebuch-backend/internal/observability"
)

// EventEntryCreated is the event type header value.
const EventEntryCreated = "journal.entry_created"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// entryCreatedPayload is the JSON body of an entry-created message.
type entryCreatedPayload struct {
	EventID          string    `json:"event_id"`
	EntryID          int64     `json:"entry_id"`
	EntryDate        string    `json:"entry_date"`
	NewWords         []string  `json:"new_words"`
	WordCount        int       `json:"word_count"`
	MinutesPracticed int       `json:"minutes_practiced"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// Publisher writes events to a single topic.
type Publisher struct {
	topic  string
	writer messageWriter
	log    *slog.Logger
}

// NewPublisher creates a Publisher writing to topic on brokers.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		Async:        false,
	}
	return newPublisher(writer, topic, logger)
}

func newPublisher(writer messageWriter, topic string, logger *slog.Logger) *Publisher {
	return &Publisher{
		topic:  topic,
		writer: writer,
		log:    logger.With("adapter", "kafka", "topic", topic),
	}
}

// PublishEntryCreated writes one message keyed by the entry ID, so events
// for the same entry stay ordered within a partition.
func (p *Publisher) PublishEntryCreated(ctx context.Context, event domain.EntryCreatedEvent) error {
	words := event.NewWords
	if words == nil {
		words = []string{}
	}

	eventID := uuid.NewString()
	value, err := json.Marshal(entryCreatedPayload{
		EventID:          eventID,
		EntryID:          event.EntryID,
		EntryDate:        domain.FormatDay(event.EntryDate),
		NewWords:         words,
		WordCount:        event.WordCount,
		MinutesPracticed: event.MinutesPracticed,
		OccurredAt:       event.OccurredAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(event.EntryID, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventEntryCreated)},
			{Key: "event_id", Value: []byte(eventID)},
		},
	})
	observability.RecordPublish(p.topic, err)
	if err != nil {
		return fmt.Errorf("write message: %w", err)
	}

	p.log.DebugContext(ctx, "event published",
		slog.String("event_id", eventID),
		slog.Int64("entry_id", event.EntryID),
	)
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops events. It is used when no brokers are configured.
type NopPublisher struct{}

// PublishEntryCreated does nothing.
func (NopPublisher) PublishEntryCreated(context.Context, domain.EntryCreatedEvent) error { return nil }

// Close does nothing.
func (NopPublisher) Close() error { return nil }
