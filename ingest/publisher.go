package ingest

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of a kafka writer the publisher uses
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Publisher puts report messages on the reports topic
type Publisher struct {
	writer MessageWriter
}

func NewPublisher(writer MessageWriter) *Publisher {
	return &Publisher{writer: writer}
}

// Publish keys the message by submission token so reports of the same
// monitoree stay in order
func (p *Publisher) Publish(ctx context.Context, m Message) error {
	value, err := json.Marshal(m)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(m.SubmissionToken),
		Value: value,
	})
}
