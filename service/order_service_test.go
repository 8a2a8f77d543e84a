package service

import (
	"context"
	"testing"

	"matchbook/domain/orderbook"
	"matchbook/internal/eventlog"
)

func newTestService(t *testing.T) (*OrderService, string) {
	t.Helper()
	dir := t.TempDir()
	log, err := eventlog.Open(eventlog.Config{Dir: dir, SegmentSize: 1 << 20})
	if err != nil {
		t.Fatalf("eventlog.Open: %v", err)
	}
	book := orderbook.New(orderbook.WithPruneThread(false))
	svc := New(book, WithEventLog(log))
	return svc, dir
}

func TestPlaceOrderAssignsIncreasingSequence(t *testing.T) {
	svc, _ := newTestService(t)
	seq1, _ := svc.PlaceOrder(orderbook.NewOrder(0, orderbook.GoodTillCancel, orderbook.Buy, 100, 5))
	seq2, _ := svc.PlaceOrder(orderbook.NewOrder(1, orderbook.GoodTillCancel, orderbook.Sell, 101, 5))
	if seq2 <= seq1 {
		t.Fatalf("sequence did not increase: %d then %d", seq1, seq2)
	}
}

func TestPlaceOrderReturnsResultingTrades(t *testing.T) {
	svc, _ := newTestService(t)
	svc.PlaceOrder(orderbook.NewOrder(0, orderbook.GoodTillCancel, orderbook.Sell, 100, 5))
	_, trades := svc.PlaceOrder(orderbook.NewOrder(1, orderbook.GoodTillCancel, orderbook.Buy, 100, 5))

	if len(trades) != 1 || trades[0].BidId != 1 || trades[0].AskId != 0 {
		t.Fatalf("trades = %+v, want a single 0x1 crossing", trades)
	}
}

func TestReplayEventLogReproducesBookState(t *testing.T) {
	svc, dir := newTestService(t)
	svc.PlaceOrder(orderbook.NewOrder(0, orderbook.GoodTillCancel, orderbook.Sell, 100, 5))
	svc.PlaceOrder(orderbook.NewOrder(1, orderbook.GoodTillCancel, orderbook.Sell, 101, 5))
	svc.Cancel(1)
	if err := svc.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}

	freshBook := orderbook.New(orderbook.WithPruneThread(false))
	freshSvc := New(freshBook)
	lastSeq, err := freshSvc.ReplayEventLog(dir)
	if err != nil {
		t.Fatalf("ReplayEventLog: %v", err)
	}
	if lastSeq != 3 {
		t.Fatalf("lastSeq = %d, want 3", lastSeq)
	}
	if got := freshBook.Size(); got != 1 {
		t.Fatalf("Size() after replay = %d, want 1", got)
	}
}
