// Package feed consumes a Kafka topic of CSV-encoded order events and
// submits each one to the engine through the same entry point a direct
// caller would use. It is grounded on the teacher's infra/kafka.Producer,
// mirrored into the consumer side of the same kafka-go client.
package feed

import (
	"context"
	"log"

	"github.com/segmentio/kafka-go"

	"matchbook/domain/orderbook"
	"matchbook/internal/eventlog"
)

// Feed polls a Kafka topic and applies each decoded event to a book.
type Feed struct {
	reader *kafka.Reader
	book   *orderbook.OrderBook
}

// New constructs a Feed reading topic from brokers within group, applying
// decoded events to book.
func New(brokers []string, topic, group string, book *orderbook.OrderBook) *Feed {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: group,
	})
	return &Feed{reader: reader, book: book}
}

// Run polls until ctx is cancelled or the reader returns a fatal error.
// A message that fails to decode is logged and skipped; it never stops the
// loop, per the spec's "malformed messages are never fatal to the feed"
// requirement.
func (f *Feed) Run(ctx context.Context) error {
	for {
		msg, err := f.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		event, err := eventlog.Decode(string(msg.Value))
		if err != nil {
			log.Printf("feed: skipping malformed message at offset %d: %v", msg.Offset, err)
			continue
		}
		eventlog.Apply(f.book, event)
	}
}

// Close stops the reader.
func (f *Feed) Close() error {
	return f.reader.Close()
}
