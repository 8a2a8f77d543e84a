package orderbook

// OrderModify requests replacing the resting order carrying Id with a new
// price and quantity, optionally on a different side. Semantically it is
// "cancel then re-add carrying the original type," so the replacement
// always loses time priority.
type OrderModify struct {
	Id       OrderId
	Side     Side
	Price    Price
	Quantity Quantity
}
