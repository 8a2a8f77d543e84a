package orderbook

import "time"

// Configuration constants a caller may need when producing prices or sizing
// an order-index reservation. Mirrors the source's Constants namespace.
const (
	// LevelArraySize bounds the admissible price range to [0, LevelArraySize).
	LevelArraySize = 60000
	// TickMultiplier is the conversion factor a human-price producer (e.g.
	// the synthetic order generator) applies before submitting.
	TickMultiplier = 100
	// InitialOrderCapacity sizes the order index's initial map allocation.
	InitialOrderCapacity = 200_000
)

// TimeOfDay names a local wall-clock time with second resolution.
type TimeOfDay struct {
	Hour, Minute, Second int
}

// MarketCloseTime is the local time of day the day-order pruner wakes up at.
var MarketCloseTime = TimeOfDay{Hour: 16, Minute: 30, Second: 0}

// nextOccurrence returns the next wall-clock instant at which t occurs,
// rolling over to tomorrow if t has already passed today.
func (t TimeOfDay) nextOccurrence(now time.Time) time.Time {
	closeTime := time.Date(now.Year(), now.Month(), now.Day(), t.Hour, t.Minute, t.Second, 0, now.Location())
	if !closeTime.After(now) {
		closeTime = closeTime.AddDate(0, 0, 1)
	}
	return closeTime
}

// Option configures an OrderBook at construction time.
type Option func(*bookConfig)

type bookConfig struct {
	startPruneThread bool
	marketClose      TimeOfDay
	levelArraySize   int
}

func defaultConfig() bookConfig {
	return bookConfig{
		startPruneThread: true,
		marketClose:      MarketCloseTime,
		levelArraySize:   LevelArraySize,
	}
}

// WithPruneThread enables or disables the background GoodForDay pruner.
// Tests and deterministic replays disable it and drive pruning manually.
func WithPruneThread(start bool) Option {
	return func(c *bookConfig) { c.startPruneThread = start }
}

// WithMarketClose overrides the local time of day the pruner wakes at.
func WithMarketClose(t TimeOfDay) Option {
	return func(c *bookConfig) { c.marketClose = t }
}

// WithLevelArraySize overrides the admissible price range, [0, size).
func WithLevelArraySize(size int) Option {
	return func(c *bookConfig) { c.levelArraySize = size }
}
