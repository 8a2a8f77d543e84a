package orderbook

// Order is an intrusive doubly-linked list node: the per-level queue is
// threaded directly through next/prev rather than boxed in a separate
// container, so the order index can hand back a stable *Order handle that
// remains valid across every other mutation of the same level.
type Order struct {
	Id                OrderId
	Type              OrderType
	Side              Side
	Price             Price
	RemainingQuantity Quantity

	next *Order
	prev *Order
}

// NewOrder constructs a resting or would-be-resting order.
func NewOrder(id OrderId, t OrderType, side Side, price Price, quantity Quantity) *Order {
	return &Order{Id: id, Type: t, Side: side, Price: price, RemainingQuantity: quantity}
}

// NewMarketOrder constructs a Market order; its price is meaningless until
// admission rewrites it via ToFillAndKill.
func NewMarketOrder(id OrderId, side Side, quantity Quantity) *Order {
	return NewOrder(id, Market, side, InvalidPrice, quantity)
}

func (o *Order) IsFilled() bool {
	return o.RemainingQuantity == 0
}

// Fill decrements the residual quantity. Filling more than remains is a
// programming error: the caller (the match loop) is responsible for never
// computing a trade quantity larger than either side's remainder.
func (o *Order) Fill(quantity Quantity) {
	if quantity > o.RemainingQuantity {
		panic("orderbook: fill quantity exceeds remaining quantity")
	}
	o.RemainingQuantity -= quantity
}

// ToFillAndKill rewrites a Market order into a non-resting limit order at
// the given price. This is the sole mechanism by which a Market order
// sweeps the opposite side without ever occupying a level of its own.
func (o *Order) ToFillAndKill(price Price) {
	o.Type = FillAndKill
	o.Price = price
}
