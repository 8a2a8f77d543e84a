package orderbook

// GetOrderInfos returns a read-only snapshot of aggregate size per price
// level on each side: bids best (highest) to worst, asks best (lowest) to
// worst.
func (ob *OrderBook) GetOrderInfos() (bids, asks []LevelInfo) {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	ob.bids.forEachLevelBestToWorst(func(l *level) {
		bids = append(bids, LevelInfo{Price: l.price, Quantity: l.quantity})
	})
	ob.asks.forEachLevelBestToWorst(func(l *level) {
		asks = append(asks, LevelInfo{Price: l.price, Quantity: l.quantity})
	})
	return bids, asks
}

// GetMidPrice returns the average of the best bid and best ask. When only
// one side has resting orders, it returns that side's best price. When
// neither side does, ok is false.
func (ob *OrderBook) GetMidPrice() (price Price, ok bool) {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	bestBid, hasBid := ob.bids.bestPrice()
	bestAsk, hasAsk := ob.asks.bestPrice()

	switch {
	case hasBid && hasAsk:
		return (bestBid + bestAsk) / 2, true
	case hasBid:
		return bestBid, true
	case hasAsk:
		return bestAsk, true
	default:
		return 0, false
	}
}
