package service

import (
	"context"
	"sync"

	"matchbook/domain/orderbook"
	"matchbook/infra/sequence"
	"matchbook/internal/broadcaster"
	"matchbook/internal/eventlog"
	"matchbook/internal/journal"
)

//
// ──────────────────────────────────────────────────────────
// Construction
// ──────────────────────────────────────────────────────────
//

// OrderService is the sequenced write entry point into the engine. It stamps
// every accepted call with a sequence number, optionally durably logs it,
// runs it against the book, and forwards any resulting trades to the
// journal and broadcaster. All coordination between the core, the event
// log, the trade journal, and the broadcaster happens here — none of those
// packages know about each other.
type OrderService struct {
	mu sync.Mutex

	book        *orderbook.OrderBook
	log         *eventlog.Log
	journal     *journal.Journal
	broadcaster *broadcaster.Broadcaster

	seq *sequence.Sequencer
}

// Option configures an OrderService at construction time.
type Option func(*OrderService)

// WithEventLog durably appends every accepted call before it reaches the
// book, enabling recovery via ReplayEventLog.
func WithEventLog(l *eventlog.Log) Option {
	return func(s *OrderService) { s.log = l }
}

// WithJournal durably records every emitted trade, keyed by the sequence
// number of the call that produced it.
func WithJournal(j *journal.Journal) Option {
	return func(s *OrderService) { s.journal = j }
}

// WithBroadcaster publishes every emitted trade to Kafka, best-effort.
func WithBroadcaster(b *broadcaster.Broadcaster) Option {
	return func(s *OrderService) { s.broadcaster = b }
}

// New wires book to whichever of the event log, journal, and broadcaster
// the caller supplies. Any of the three may be omitted (a nil-valued
// component is simply skipped), which is how tests and cmd/replay without
// -journal-dir run with a subset of the ambient stack.
func New(book *orderbook.OrderBook, opts ...Option) *OrderService {
	s := &OrderService{book: book, seq: sequence.New(0)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// PlaceOrder submits a new order and returns the sequence number it was
// assigned along with any trades it produced.
func (s *OrderService) PlaceOrder(o *orderbook.Order) (seq uint64, trades []orderbook.Trade) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq = s.assignSeq()
	s.appendLog(seq, eventlog.Event{
		Kind: eventlog.KindNew, Id: o.Id, Type: o.Type, Side: o.Side, Price: o.Price, Quantity: o.RemainingQuantity,
	})

	s.book.Add(o)
	trades = s.drainTrades()
	s.publish(seq, trades)
	return seq, trades
}

// Cancel submits a cancellation. Cancels never produce trades, but the
// call is still sequenced and logged so replay reproduces it in order.
func (s *OrderService) Cancel(id orderbook.OrderId) (seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq = s.assignSeq()
	s.appendLog(seq, eventlog.Event{Kind: eventlog.KindCancel, Id: id})
	s.book.Cancel(id)
	return seq
}

// Modify submits a modify, which — per the book's semantics — can trigger
// an immediate match.
func (s *OrderService) Modify(m orderbook.OrderModify) (seq uint64, trades []orderbook.Trade) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq = s.assignSeq()
	s.appendLog(seq, eventlog.Event{
		Kind: eventlog.KindModify, Id: m.Id, Side: m.Side, Price: m.Price, Quantity: m.Quantity,
	})

	s.book.Modify(m)
	trades = s.drainTrades()
	s.publish(seq, trades)
	return seq, trades
}

func (s *OrderService) assignSeq() uint64 {
	return s.seq.Next()
}

func (s *OrderService) appendLog(seq uint64, e eventlog.Event) {
	if s.log == nil {
		return
	}
	_ = s.log.Append(eventlog.NewRecord(seq, e.Encode()))
}

// drainTrades takes ownership of every trade produced by the call just
// made and resets the book's buffer, so a second call never re-observes
// the first call's trades. Callers that talk to the book directly, rather
// than through this service, manage GetTrades/ClearTrades themselves.
func (s *OrderService) drainTrades() []orderbook.Trade {
	trades := s.book.GetTrades()
	s.book.ClearTrades()
	return trades
}

func (s *OrderService) publish(seq uint64, trades []orderbook.Trade) {
	for _, trade := range trades {
		if s.journal != nil {
			_ = s.journal.Put(seq, trade)
		}
		if s.broadcaster != nil {
			s.broadcaster.Publish(trade)
		}
	}
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

// Snapshot returns a read-only view of both sides of the book.
func (s *OrderService) Snapshot() (bids, asks []orderbook.LevelInfo) {
	return s.book.GetOrderInfos()
}

//
// ──────────────────────────────────────────────────────────
// Recovery
// ──────────────────────────────────────────────────────────
//

// ReplayEventLog rebuilds book state and the sequence counter from a
// durable event log written by a prior process, applying each record
// directly to the book (bypassing PlaceOrder/Cancel/Modify, since the
// records are already sequenced and there is nothing left to log).
func (s *OrderService) ReplayEventLog(dir string) (lastSeq uint64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lastSeq, err = eventlog.Replay(dir, func(r *eventlog.Record) error {
		event, err := eventlog.Decode(string(r.Data))
		if err != nil {
			return err
		}
		eventlog.Apply(s.book, event)
		s.book.ClearTrades()
		return nil
	})
	if err == nil && lastSeq > s.seq.Current() {
		s.seq.Reset(lastSeq)
	}
	return lastSeq, err
}

//
// ──────────────────────────────────────────────────────────
// Shutdown
// ──────────────────────────────────────────────────────────
//

// Close shuts down every ambient component this service owns, plus the
// book's own pruner goroutine.
func (s *OrderService) Close(ctx context.Context) error {
	if s.broadcaster != nil {
		if err := s.broadcaster.Close(ctx); err != nil {
			return err
		}
	}
	if s.journal != nil {
		if err := s.journal.Close(); err != nil {
			return err
		}
	}
	if s.log != nil {
		if err := s.log.Close(); err != nil {
			return err
		}
	}
	s.book.Close()
	return nil
}
