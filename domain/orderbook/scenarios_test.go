package orderbook

import "testing"

func newTestBook() *OrderBook {
	return New(WithPruneThread(false))
}

func addAll(book *OrderBook, orders ...*Order) {
	for _, o := range orders {
		book.Add(o)
	}
}

func TestPriceTimeFIFOSellSide(t *testing.T) {
	book := newTestBook()
	addAll(book,
		NewOrder(0, GoodTillCancel, Sell, 100, 5),
		NewOrder(1, GoodTillCancel, Sell, 100, 5),
		NewOrder(2, GoodTillCancel, Sell, 100, 5),
		NewOrder(3, GoodTillCancel, Buy, 100, 12),
	)

	trades := book.GetTrades()
	want := []Trade{
		{BidId: 3, AskId: 0, BidPrice: 100, AskPrice: 100, Quantity: 5},
		{BidId: 3, AskId: 1, BidPrice: 100, AskPrice: 100, Quantity: 5},
		{BidId: 3, AskId: 2, BidPrice: 100, AskPrice: 100, Quantity: 2},
	}
	assertTrades(t, trades, want)

	if got := book.Size(); got != 1 {
		t.Fatalf("Size() = %d, want 1", got)
	}
	_, asks := book.GetOrderInfos()
	if len(asks) != 1 || asks[0].Price != 100 || asks[0].Quantity != 3 {
		t.Fatalf("asks = %+v, want one level at 100 with quantity 3", asks)
	}
}

func TestMarketSweepWalksThreeLevels(t *testing.T) {
	book := newTestBook()
	addAll(book,
		NewOrder(0, GoodTillCancel, Sell, 100, 10),
		NewOrder(1, GoodTillCancel, Sell, 101, 10),
		NewOrder(2, GoodTillCancel, Sell, 102, 10),
		NewMarketOrder(3, Buy, 100),
	)

	trades := book.GetTrades()
	want := []Trade{
		{BidId: 3, AskId: 0, BidPrice: 102, AskPrice: 100, Quantity: 10},
		{BidId: 3, AskId: 1, BidPrice: 102, AskPrice: 101, Quantity: 10},
		{BidId: 3, AskId: 2, BidPrice: 102, AskPrice: 102, Quantity: 10},
	}
	assertTrades(t, trades, want)

	if got := book.Size(); got != 0 {
		t.Fatalf("Size() = %d, want 0 (unfilled Market residual must not rest)", got)
	}
}

func TestFillOrKillExactlyFilledAtBoundary(t *testing.T) {
	book := newTestBook()
	addAll(book,
		NewOrder(0, GoodTillCancel, Sell, 100, 7),
		NewOrder(1, FillOrKill, Buy, 100, 7),
	)

	trades := book.GetTrades()
	want := []Trade{{BidId: 1, AskId: 0, BidPrice: 100, AskPrice: 100, Quantity: 7}}
	assertTrades(t, trades, want)

	if got := book.Size(); got != 0 {
		t.Fatalf("Size() = %d, want 0", got)
	}
}

func TestFillOrKillOneUnitShortLeavesBookUnchanged(t *testing.T) {
	book := newTestBook()
	addAll(book,
		NewOrder(0, GoodTillCancel, Sell, 100, 9),
		NewOrder(1, FillOrKill, Buy, 100, 10),
	)

	if trades := book.GetTrades(); len(trades) != 0 {
		t.Fatalf("trades = %+v, want none", trades)
	}
	if got := book.Size(); got != 1 {
		t.Fatalf("Size() = %d, want 1", got)
	}
	_, asks := book.GetOrderInfos()
	if len(asks) != 1 || asks[0].Price != 100 || asks[0].Quantity != 9 {
		t.Fatalf("asks = %+v, want one level at 100 with quantity 9", asks)
	}
}

func TestModifyTriggersMatch(t *testing.T) {
	book := newTestBook()
	addAll(book,
		NewOrder(0, GoodTillCancel, Buy, 100, 10),
		NewOrder(1, GoodTillCancel, Sell, 110, 10),
	)
	book.Modify(OrderModify{Id: 1, Side: Sell, Price: 95, Quantity: 10})

	trades := book.GetTrades()
	want := []Trade{{BidId: 0, AskId: 1, BidPrice: 100, AskPrice: 95, Quantity: 10}}
	assertTrades(t, trades, want)

	if got := book.Size(); got != 0 {
		t.Fatalf("Size() = %d, want 0", got)
	}
}

func TestCancelUnknownAndCancelAlreadyCancelledAreNoOps(t *testing.T) {
	book := newTestBook()
	book.Add(NewOrder(0, GoodTillCancel, Buy, 100, 10))

	book.Cancel(999)
	book.Cancel(0)
	book.Cancel(0)

	if trades := book.GetTrades(); len(trades) != 0 {
		t.Fatalf("trades = %+v, want none", trades)
	}
	if got := book.Size(); got != 0 {
		t.Fatalf("Size() = %d, want 0", got)
	}
	bids, asks := book.GetOrderInfos()
	if len(bids) != 0 || len(asks) != 0 {
		t.Fatalf("both sides should be empty, got bids=%+v asks=%+v", bids, asks)
	}
}

func assertTrades(t *testing.T, got, want []Trade) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("trades = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("trade[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
