package orderbook

import "testing"

func TestZeroQuantityAddIsNoOp(t *testing.T) {
	book := newTestBook()
	book.Add(NewOrder(0, GoodTillCancel, Buy, 100, 0))
	if got := book.Size(); got != 0 {
		t.Fatalf("Size() = %d, want 0", got)
	}
}

func TestDuplicateIdAddIsNoOp(t *testing.T) {
	book := newTestBook()
	book.Add(NewOrder(0, GoodTillCancel, Buy, 100, 5))
	book.Add(NewOrder(0, GoodTillCancel, Buy, 101, 9))

	if got := book.Size(); got != 1 {
		t.Fatalf("Size() = %d, want 1", got)
	}
	bids, _ := book.GetOrderInfos()
	if len(bids) != 1 || bids[0].Price != 100 || bids[0].Quantity != 5 {
		t.Fatalf("bids = %+v, want the original order at 100/5 untouched", bids)
	}
}

func TestModifyUnknownIdIsNoOp(t *testing.T) {
	book := newTestBook()
	book.Modify(OrderModify{Id: 42, Side: Buy, Price: 100, Quantity: 1})
	if got := book.Size(); got != 0 {
		t.Fatalf("Size() = %d, want 0", got)
	}
}

func TestModifyLosesTimePriority(t *testing.T) {
	book := newTestBook()
	book.Add(NewOrder(0, GoodTillCancel, Sell, 100, 5))
	book.Add(NewOrder(1, GoodTillCancel, Sell, 100, 5))

	book.Modify(OrderModify{Id: 0, Side: Sell, Price: 100, Quantity: 5})

	book.Add(NewOrder(2, GoodTillCancel, Buy, 100, 5))
	trades := book.GetTrades()
	if len(trades) != 1 || trades[0].AskId != 1 {
		t.Fatalf("trades = %+v, want the untouched order 1 (not the re-queued order 0) to trade first", trades)
	}
}

func TestFillAndKillDropsWithoutImmediateCross(t *testing.T) {
	book := newTestBook()
	book.Add(NewOrder(0, FillAndKill, Buy, 100, 5))
	if got := book.Size(); got != 0 {
		t.Fatalf("Size() = %d, want 0 (FillAndKill with no opposite liquidity must not rest)", got)
	}
}

func TestFillAndKillPartialFillDoesNotRestResidual(t *testing.T) {
	book := newTestBook()
	book.Add(NewOrder(0, GoodTillCancel, Sell, 100, 4))
	book.Add(NewOrder(1, FillAndKill, Buy, 100, 10))

	if got := book.Size(); got != 0 {
		t.Fatalf("Size() = %d, want 0", got)
	}
	trades := book.GetTrades()
	if len(trades) != 1 || trades[0].Quantity != 4 {
		t.Fatalf("trades = %+v, want a single 4-unit fill", trades)
	}
}

func TestMarketOrderDroppedWhenOppositeSideEmpty(t *testing.T) {
	book := newTestBook()
	book.Add(NewMarketOrder(0, Buy, 10))
	if got := book.Size(); got != 0 {
		t.Fatalf("Size() = %d, want 0", got)
	}
}

func TestClearTrades(t *testing.T) {
	book := newTestBook()
	book.Add(NewOrder(0, GoodTillCancel, Sell, 100, 5))
	book.Add(NewOrder(1, GoodTillCancel, Buy, 100, 5))
	if len(book.GetTrades()) != 1 {
		t.Fatalf("expected one trade before ClearTrades")
	}
	book.ClearTrades()
	if got := book.GetTrades(); len(got) != 0 {
		t.Fatalf("GetTrades() = %+v after ClearTrades, want none", got)
	}
}

func TestGetMidPrice(t *testing.T) {
	book := newTestBook()
	if _, ok := book.GetMidPrice(); ok {
		t.Fatalf("empty book should report no mid price")
	}

	book.Add(NewOrder(0, GoodTillCancel, Buy, 100, 5))
	if p, ok := book.GetMidPrice(); !ok || p != 100 {
		t.Fatalf("GetMidPrice() = (%d, %v), want (100, true) with only a bid resting", p, ok)
	}

	book.Add(NewOrder(1, GoodTillCancel, Sell, 200, 5))
	if p, ok := book.GetMidPrice(); !ok || p != 150 {
		t.Fatalf("GetMidPrice() = (%d, %v), want (150, true)", p, ok)
	}
}

func TestCancelBatch(t *testing.T) {
	book := newTestBook()
	book.Add(NewOrder(0, GoodTillCancel, Buy, 100, 5))
	book.Add(NewOrder(1, GoodTillCancel, Buy, 101, 5))
	book.Add(NewOrder(2, GoodTillCancel, Buy, 102, 5))

	book.CancelBatch([]OrderId{0, 999, 2})
	if got := book.Size(); got != 1 {
		t.Fatalf("Size() = %d, want 1", got)
	}
	bids, _ := book.GetOrderInfos()
	if len(bids) != 1 || bids[0].Price != 101 {
		t.Fatalf("bids = %+v, want only the order at 101 left", bids)
	}
}
