package orderbook

// addLocked runs the five admission rules and, for whatever survives them,
// the match loop. Callers hold ob.mu.
func (ob *OrderBook) addLocked(o *Order) {
	if o.RemainingQuantity == 0 {
		return
	}
	if _, exists := ob.orders[o.Id]; exists {
		return
	}

	opposite := ob.oppositeArray(o.Side)

	if o.Type == Market {
		worst, ok := opposite.worstPrice()
		if !ok {
			return
		}
		o.ToFillAndKill(worst)
	}

	if o.Type == FillAndKill && !ob.canMatchImmediately(o) {
		return
	}

	if o.Type == FillOrKill && !opposite.canFullyFill(o.Price, o.RemainingQuantity) {
		return
	}

	ob.restLocked(o)
	ob.matchLocked()

	if o.Type == FillAndKill && !o.IsFilled() {
		ob.cancelLocked(o.Id)
	}

	if o.Type == FillOrKill && !o.IsFilled() {
		panic("orderbook: FillOrKill order left resting after admission check passed")
	}
}

// canMatchImmediately reports whether o's side would cross the book at all,
// the admission test for FillAndKill: a best price on the opposite side that
// o's limit can reach.
func (ob *OrderBook) canMatchImmediately(o *Order) bool {
	opposite := ob.oppositeArray(o.Side)
	best, ok := opposite.bestPrice()
	if !ok {
		return false
	}
	if o.Side == Buy {
		return o.Price >= best
	}
	return o.Price <= best
}

// restLocked enters o into the order index and its level's queue. It does
// not match; the caller runs matchLocked afterward.
func (ob *OrderBook) restLocked(o *Order) {
	ob.orders[o.Id] = o
	la := ob.sideArray(o.Side)
	la.getLevel(o.Price).pushBack(o)
	la.onOrderAdded(o.Price)
}

// cancelLocked removes a resting order from its level and the order index,
// returning it to the pool. Unknown ids are a silent no-op.
func (ob *OrderBook) cancelLocked(id OrderId) {
	o, ok := ob.orders[id]
	if !ok {
		return
	}
	delete(ob.orders, id)

	la := ob.sideArray(o.Side)
	la.getLevel(o.Price).unlink(o)
	la.onOrderRemoved(o.Price)

	ob.pool.put(o)
}

// matchLocked repeatedly crosses the best bid against the best ask while
// both exist and their prices cross, recording a Trade per crossing and
// removing any order that becomes fully filled.
func (ob *OrderBook) matchLocked() {
	for {
		if ob.bids.empty() || ob.asks.empty() {
			return
		}
		bidLevel := ob.bids.bestLevel()
		askLevel := ob.asks.bestLevel()
		if bidLevel.price < askLevel.price {
			return
		}

		bid := bidLevel.head
		ask := askLevel.head

		quantity := bid.RemainingQuantity
		if ask.RemainingQuantity < quantity {
			quantity = ask.RemainingQuantity
		}

		bid.Fill(quantity)
		ask.Fill(quantity)
		bidLevel.reduceQuantity(quantity)
		askLevel.reduceQuantity(quantity)

		ob.trades = append(ob.trades, Trade{
			BidId:    bid.Id,
			AskId:    ask.Id,
			BidPrice: bid.Price,
			AskPrice: ask.Price,
			Quantity: quantity,
		})

		if bid.IsFilled() {
			ob.removeFilledLocked(bid)
		}
		if ask.IsFilled() {
			ob.removeFilledLocked(ask)
		}
	}
}

// removeFilledLocked takes a fully-filled order out of its level and the
// order index. Unlike cancelLocked it skips the id lookup since the caller
// already holds the order.
func (ob *OrderBook) removeFilledLocked(o *Order) {
	delete(ob.orders, o.Id)

	la := ob.sideArray(o.Side)
	la.getLevel(o.Price).unlink(o)
	la.onOrderRemoved(o.Price)

	ob.pool.put(o)
}
