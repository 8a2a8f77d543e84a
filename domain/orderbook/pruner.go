package orderbook

import "time"

// runPruner wakes at the configured market-close time each day and cancels
// every resting GoodForDay order. It is the Go stand-in for the source's
// condition_variable + wait_until: a time.Timer reset each cycle, raced
// against the shutdown channel via select.
func (ob *OrderBook) runPruner() {
	defer ob.shutdownWg.Done()

	timer := time.NewTimer(time.Until(ob.marketClose.nextOccurrence(time.Now())))
	defer timer.Stop()

	for {
		select {
		case <-ob.shutdownCh:
			return
		case <-timer.C:
			ob.pruneGoodForDay()
			timer.Reset(time.Until(ob.marketClose.nextOccurrence(time.Now())))
		}
	}
}

// pruneGoodForDay cancels every resting GoodForDay order. It snapshots the
// ids under the mutex, releases it, then cancels them through CancelBatch,
// which re-acquires the mutex; an order filled or cancelled in between is a
// harmless no-op.
func (ob *OrderBook) pruneGoodForDay() {
	ob.mu.Lock()
	ids := make([]OrderId, 0)
	for id, o := range ob.orders {
		if o.Type == GoodForDay {
			ids = append(ids, id)
		}
	}
	ob.mu.Unlock()

	ob.CancelBatch(ids)
}
