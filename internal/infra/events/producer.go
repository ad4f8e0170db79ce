package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

const sessionTopic = "storefront.session.events"

// Event is one session activity record published for analytics.
type Event struct {
	Type    string    `json:"type"`
	Tenant  string    `json:"tenant"`
	Session string    `json:"session"`
	View    string    `json:"view,omitempty"`
	At      time.Time `json:"at"`
}

// Producer publishes session events to Kafka. A nil Producer (no broker
// configured) silently drops everything, so callers never branch.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(broker string) *Producer {
	if broker == "" {
		return nil
	}
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(broker),
			Topic:        sessionTopic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
			Async:        true,
		},
	}
}

// Publish sends one event, keyed by session so per-session ordering holds.
// Errors are logged, never surfaced: analytics must not affect the session.
func (p *Producer) Publish(ctx context.Context, ev Event) {
	if p == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("events type=%s marshal failed: %v", ev.Type, err)
		return
	}
	msg := kafka.Message{
		Key:   []byte(ev.Session),
		Value: data,
		Time:  ev.At,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Printf("events type=%s publish failed: %v", ev.Type, err)
	}
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
