package generator

// MarketState parameterizes the mid-price random walk. Fields mirror the
// teacher's original_source MarketState: Mid is the starting mid price
// (in human units, before TickMultiplier scaling); Drift and Sigma are the
// GBM drift and volatility; Dt is the per-tick time step; B controls how
// far synthetic order prices spread from the mid.
type MarketState struct {
	Mid   float64
	Drift float64
	Sigma float64
	Dt    float64
	B     float64
}

// DefaultMarketState matches the constants the original generator shipped
// with.
func DefaultMarketState() MarketState {
	return MarketState{Mid: 100.0, Drift: 0.1, Sigma: 0.2, Dt: 0.0001, B: 0.002}
}
