package orderbook

import "matchbook/infra/memory"

// orderPool recycles *Order values across the hot add/remove path. It is a
// pure allocation optimization: an order is only ever returned to the pool
// once it has left both the order index and its level's queue, so a pooled
// value is never observable as live state.
type orderPool struct {
	p *memory.Pool[Order]
}

func newOrderPool() *orderPool {
	return &orderPool{p: memory.NewPool(func() *Order { return new(Order) })}
}

func (p *orderPool) get(id OrderId, t OrderType, side Side, price Price, quantity Quantity) *Order {
	o := p.p.Get()
	*o = Order{Id: id, Type: t, Side: side, Price: price, RemainingQuantity: quantity}
	return o
}

func (p *orderPool) put(o *Order) {
	*o = Order{}
	p.p.Put(o)
}
