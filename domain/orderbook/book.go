package orderbook

import "sync"

// OrderBook is a single-instrument limit order book. Every exported method
// takes the same mutex, so callers never observe a torn view of the book —
// this includes the read-only accessors, per the spec's concurrency
// envelope, not just the mutators.
type OrderBook struct {
	mu sync.Mutex

	bids *levelArray
	asks *levelArray

	orders map[OrderId]*Order
	trades []Trade

	pool *orderPool

	marketClose TimeOfDay
	shutdownCh  chan struct{}
	shutdownWg  sync.WaitGroup
	closeOnce   sync.Once
}

// New constructs an OrderBook and, unless WithPruneThread(false) is passed,
// starts its background GoodForDay pruner immediately.
func New(opts ...Option) *OrderBook {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ob := &OrderBook{
		bids:        newLevelArray(Buy, cfg.levelArraySize),
		asks:        newLevelArray(Sell, cfg.levelArraySize),
		orders:      make(map[OrderId]*Order, InitialOrderCapacity),
		pool:        newOrderPool(),
		marketClose: cfg.marketClose,
		shutdownCh:  make(chan struct{}),
	}

	if cfg.startPruneThread {
		ob.shutdownWg.Add(1)
		go ob.runPruner()
	}
	return ob
}

// Close signals the background pruner to stop and waits for it to exit.
// It is safe to call Close on a book constructed with WithPruneThread(false)
// — the wait group has nothing to wait on.
func (ob *OrderBook) Close() {
	ob.closeOnce.Do(func() { close(ob.shutdownCh) })
	ob.shutdownWg.Wait()
}

// Size returns the number of live (resting) orders across both sides.
func (ob *OrderBook) Size() int {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	return len(ob.orders)
}

// GetTrades returns the trades accumulated since the last ClearTrades.
func (ob *OrderBook) GetTrades() []Trade {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	out := make([]Trade, len(ob.trades))
	copy(out, ob.trades)
	return out
}

// ClearTrades empties the accumulated trade buffer.
func (ob *OrderBook) ClearTrades() {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	ob.trades = ob.trades[:0]
}

// Add admits a new order into the book, applying the admission rules and
// then running the match loop. Resulting trades, if any, are appended to
// the trade buffer and retrievable via GetTrades.
func (ob *OrderBook) Add(o *Order) {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	ob.addLocked(o)
}

// Cancel removes a resting order. Unknown ids are a silent no-op.
func (ob *OrderBook) Cancel(id OrderId) {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	ob.cancelLocked(id)
}

// CancelBatch cancels every id in ids, ignoring unknown ones. It takes the
// mutex once for the whole batch, used by the day-order pruner so a batch
// of cancellations is atomic with respect to other callers.
func (ob *OrderBook) CancelBatch(ids []OrderId) {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	for _, id := range ids {
		ob.cancelLocked(id)
	}
}

// Modify replaces a resting order's side/price/quantity, preserving its
// original type but losing its place in time priority. Unknown ids are a
// silent no-op.
func (ob *OrderBook) Modify(m OrderModify) {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	existing, ok := ob.orders[m.Id]
	if !ok {
		return
	}
	t := existing.Type
	ob.cancelLocked(m.Id)
	ob.addLocked(ob.pool.get(m.Id, t, m.Side, m.Price, m.Quantity))
}

func (ob *OrderBook) sideArray(side Side) *levelArray {
	if side == Buy {
		return ob.bids
	}
	return ob.asks
}

func (ob *OrderBook) oppositeArray(side Side) *levelArray {
	if side == Buy {
		return ob.asks
	}
	return ob.bids
}
