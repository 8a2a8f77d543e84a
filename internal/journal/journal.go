// Package journal persists emitted trades durably, keyed by the sequence
// number the service layer assigns each accepted operation. It is grounded
// on the teacher's pebble-backed exit WAL, repurposed from outbox
// ack-tracking to an append-only trade history: every entry is written once
// and never transitions between states.
package journal

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"

	"matchbook/domain/orderbook"
)

// Entry is one journaled trade, stamped with the sequence number of the
// Add/Modify call that produced it and the time it was journaled.
type Entry struct {
	Seq   uint64
	Time  int64
	Trade orderbook.Trade
}

// encoding: [time:8][bidId:8][askId:8][bidPrice:8][askPrice:8][qty:8]
const entrySize = 8 * 6

func encodeEntry(e Entry) []byte {
	buf := make([]byte, entrySize)
	binary.BigEndian.PutUint64(buf[0:8], uint64(e.Time))
	binary.BigEndian.PutUint64(buf[8:16], e.Trade.BidId)
	binary.BigEndian.PutUint64(buf[16:24], e.Trade.AskId)
	binary.BigEndian.PutUint64(buf[24:32], uint64(e.Trade.BidPrice))
	binary.BigEndian.PutUint64(buf[32:40], uint64(e.Trade.AskPrice))
	binary.BigEndian.PutUint64(buf[40:48], e.Trade.Quantity)
	return buf
}

func decodeEntry(seq uint64, b []byte) (Entry, error) {
	if len(b) != entrySize {
		return Entry{}, fmt.Errorf("journal: entry has %d bytes, want %d", len(b), entrySize)
	}
	return Entry{
		Seq:  seq,
		Time: int64(binary.BigEndian.Uint64(b[0:8])),
		Trade: orderbook.Trade{
			BidId:    binary.BigEndian.Uint64(b[8:16]),
			AskId:    binary.BigEndian.Uint64(b[16:24]),
			BidPrice: orderbook.Price(binary.BigEndian.Uint64(b[24:32])),
			AskPrice: orderbook.Price(binary.BigEndian.Uint64(b[32:40])),
			Quantity: binary.BigEndian.Uint64(b[40:48]),
		},
	}, nil
}

// Journal is a durable, sequence-keyed trade store.
type Journal struct {
	db *pebble.DB
}

// Open opens (creating if necessary) a pebble store rooted at dir.
func Open(dir string) (*Journal, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &Journal{db: db}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

// Put durably records trade under seq. Writes are synced: a Put that
// returns nil survives a crash.
func (j *Journal) Put(seq uint64, trade orderbook.Trade) error {
	e := Entry{Seq: seq, Time: time.Now().UnixNano(), Trade: trade}
	return j.db.Set(keyFor(seq), encodeEntry(e), pebble.Sync)
}

// ScanRange visits every journaled entry with fromSeq <= seq <= toSeq, in
// ascending sequence order.
func (j *Journal) ScanRange(fromSeq, toSeq uint64, fn func(Entry) error) error {
	iter, err := j.db.NewIter(&pebble.IterOptions{
		LowerBound: keyFor(fromSeq),
		UpperBound: keyFor(toSeq + 1),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		seq := seqFromKey(iter.Key())
		e, err := decodeEntry(seq, iter.Value())
		if err != nil {
			return err
		}
		if err := fn(e); err != nil {
			return err
		}
	}
	return iter.Error()
}

// keyFor renders a sequence number as a fixed-width big-endian key, so
// pebble's lexical key ordering matches numeric sequence ordering.
func keyFor(seq uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, seq)
	return buf
}

func seqFromKey(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}
