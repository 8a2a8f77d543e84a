package orderbook

// Trade records one crossing of a resting bid against a resting ask. Both
// prices are the resting sides' own limits; the aggressor's limit is never
// recorded here — a consumer that needs it correlates against the submitted
// order it just placed.
type Trade struct {
	BidId    OrderId
	AskId    OrderId
	BidPrice Price
	AskPrice Price
	Quantity Quantity
}
