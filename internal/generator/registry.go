package generator

import (
	"math/rand"

	"matchbook/domain/orderbook"
)

// liveOrder is the minimal state the registry needs to remember about an
// order it has emitted a New event for, so a later Cancel or Modify event
// can target something actually resting.
type liveOrder struct {
	id       orderbook.OrderId
	side     orderbook.Side
	price    orderbook.Price
	quantity orderbook.Quantity
}

// registry tracks currently-live synthetic order ids, so cancels and
// modifies always target a real id. Ported from OrderRegistry: a map for
// O(1) lookup plus a slice for O(1) uniform-random selection, kept in sync
// via swap-erase on removal.
type registry struct {
	live      map[orderbook.OrderId]liveOrder
	ids       []orderbook.OrderId
	idToIndex map[orderbook.OrderId]int
}

func newRegistry() *registry {
	return &registry{
		live:      make(map[orderbook.OrderId]liveOrder),
		idToIndex: make(map[orderbook.OrderId]int),
	}
}

func (r *registry) onNew(o liveOrder) {
	if _, exists := r.live[o.id]; exists {
		r.live[o.id] = o
		return
	}
	r.live[o.id] = o
	r.idToIndex[o.id] = len(r.ids)
	r.ids = append(r.ids, o.id)
}

func (r *registry) onCancel(id orderbook.OrderId) {
	r.erase(id)
}

func (r *registry) onModify(o liveOrder) {
	if _, exists := r.live[o.id]; !exists {
		return
	}
	r.live[o.id] = o
}

func (r *registry) empty() bool {
	return len(r.ids) == 0
}

// randomLive returns a uniformly random currently-live order, or false if
// none are resting.
func (r *registry) randomLive(rng *rand.Rand) (liveOrder, bool) {
	if len(r.ids) == 0 {
		return liveOrder{}, false
	}
	id := r.ids[rng.Intn(len(r.ids))]
	o, ok := r.live[id]
	return o, ok
}

func (r *registry) erase(id orderbook.OrderId) {
	if _, ok := r.live[id]; !ok {
		return
	}
	delete(r.live, id)

	idx, ok := r.idToIndex[id]
	if !ok {
		return
	}
	last := len(r.ids) - 1
	if idx != last {
		lastId := r.ids[last]
		r.ids[idx] = lastId
		r.idToIndex[lastId] = idx
	}
	r.ids = r.ids[:last]
	delete(r.idToIndex, id)
}
