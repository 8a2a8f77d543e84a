// Package broadcaster publishes emitted trades to Kafka on a best-effort,
// asynchronous basis. It is grounded on the teacher's jobs/broadcaster,
// adapted from a WAL-outbox replay loop (scan-mark-sent-mark-acked against
// a pebble-backed state machine) to a plain buffered channel drained by one
// goroutine — the spec calls for best-effort delivery with no retry
// bookkeeping, so the outbox states this package's ancestor tracked have no
// job to do here.
package broadcaster

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/IBM/sarama"

	"matchbook/domain/orderbook"
)

// message is the JSON payload published per trade.
type message struct {
	BidId    uint64 `json:"bidId"`
	AskId    uint64 `json:"askId"`
	BidPrice int64  `json:"bidPrice"`
	AskPrice int64  `json:"askPrice"`
	Quantity uint64 `json:"quantity"`
}

// Broadcaster publishes trades to a Kafka topic without ever blocking the
// caller of Publish on broker availability.
type Broadcaster struct {
	producer sarama.SyncProducer
	topic    string
	queue    chan orderbook.Trade
	done     chan struct{}
}

// New dials brokers and starts the drain goroutine. queueSize bounds how
// many trades may be buffered before Publish starts dropping each new
// trade rather than blocking the matching path.
func New(brokers []string, topic string, queueSize int) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Retry.Max = 3

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("broadcaster: connect to kafka: %w", err)
	}

	b := &Broadcaster{
		producer: producer,
		topic:    topic,
		queue:    make(chan orderbook.Trade, queueSize),
		done:     make(chan struct{}),
	}
	go b.drain()
	return b, nil
}

// Publish enqueues trade for asynchronous publication. If the queue is
// full the trade is dropped and logged — publication is best-effort, never
// a source of backpressure on the matching engine.
func (b *Broadcaster) Publish(trade orderbook.Trade) {
	select {
	case b.queue <- trade:
	default:
		log.Printf("broadcaster: queue full, dropping trade bid=%d ask=%d", trade.BidId, trade.AskId)
	}
}

func (b *Broadcaster) drain() {
	defer close(b.done)
	for trade := range b.queue {
		if err := b.send(trade); err != nil {
			log.Printf("broadcaster: publish failed for bid=%d ask=%d: %v", trade.BidId, trade.AskId, err)
		}
	}
}

func (b *Broadcaster) send(trade orderbook.Trade) error {
	payload, err := json.Marshal(message{
		BidId:    trade.BidId,
		AskId:    trade.AskId,
		BidPrice: trade.BidPrice,
		AskPrice: trade.AskPrice,
		Quantity: trade.Quantity,
	})
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: b.topic,
		Key:   sarama.StringEncoder(fmt.Sprintf("%d", trade.BidId)),
		Value: sarama.ByteEncoder(payload),
	}
	_, _, err = b.producer.SendMessage(msg)
	return err
}

// Close stops accepting new trades, waits for the queue to drain, and
// closes the underlying producer. ctx bounds how long Close waits for the
// drain to finish before giving up.
func (b *Broadcaster) Close(ctx context.Context) error {
	close(b.queue)
	select {
	case <-b.done:
	case <-ctx.Done():
	}
	return b.producer.Close()
}
