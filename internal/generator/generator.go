// Package generator produces synthetic order flow by driving a
// geometric-Brownian-motion mid-price walk and emitting a burst of
// new/cancel events per tick; no modify events are generated. It is
// grounded on original_source/src/synthetic_order_generator: the same GBM
// update, the same log-normal price-spread sampling around the mid, and the
// same live-order registry, so a cancel always targets an id the generator
// has emitted a New event for and not yet cancelled. Whether that order
// still rests in a book (rather than having filled) is not tracked.
package generator

import (
	"math"
	"math/rand"

	"matchbook/domain/orderbook"
	"matchbook/internal/eventlog"
)

// Config parameterizes one generation run.
type Config struct {
	State MarketState
	Ticks int
	// EventsPerTick bounds how many events (combined new/cancel)
	// a single tick may emit; the actual count is drawn uniformly on
	// [0, EventsPerTick] each tick.
	EventsPerTick int
	Seed          int64
}

// Generator holds the RNG and live-order bookkeeping across a run.
type Generator struct {
	cfg      Config
	rng      *rand.Rand
	registry *registry
	nextId   orderbook.OrderId
}

// New constructs a Generator ready to Run.
func New(cfg Config) *Generator {
	if cfg.EventsPerTick <= 0 {
		cfg.EventsPerTick = 4
	}
	return &Generator{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		registry: newRegistry(),
	}
}

// Run produces cfg.Ticks worth of order flow, returning the full sequence
// of events in emission order.
func (g *Generator) Run() []eventlog.Event {
	mid := g.cfg.State.Mid
	events := make([]eventlog.Event, 0, g.cfg.Ticks*g.cfg.EventsPerTick)

	for i := 0; i < g.cfg.Ticks; i++ {
		mid = g.stepMid(mid)

		addCount, cancelCount := g.splitEventCount()

		// Cancels are generated before adds within a tick so a burst never
		// cancels an order it just created in the same tick.
		var bucket []eventlog.Event
		bucket = g.appendCancelEvents(bucket, cancelCount)
		bucket = g.appendNewEvents(bucket, mid, addCount)

		g.rng.Shuffle(len(bucket), func(a, b int) { bucket[a], bucket[b] = bucket[b], bucket[a] })
		events = append(events, bucket...)
	}
	return events
}

// stepMid advances the mid price by one GBM step.
func (g *Generator) stepMid(mid float64) float64 {
	s := g.cfg.State
	drift := (s.Drift - 0.5*s.Sigma*s.Sigma) * s.Dt
	shock := math.Sqrt(s.Dt) * s.Sigma * g.rng.NormFloat64()
	return mid * math.Exp(drift+shock)
}

func (g *Generator) splitEventCount() (addCount, cancelCount int) {
	total := g.rng.Intn(g.cfg.EventsPerTick + 1)
	for k := 0; k < total; k++ {
		if g.rng.Float64() < 0.5 {
			addCount++
		} else {
			cancelCount++
		}
	}
	return addCount, cancelCount
}

func (g *Generator) appendNewEvents(out []eventlog.Event, mid float64, count int) []eventlog.Event {
	for i := 0; i < count; i++ {
		side := g.randomSide()
		price := g.randomPrice(mid, side)
		typ := g.randomOrderType()
		quantity := g.randomQuantity()

		id := g.nextId
		g.nextId++

		out = append(out, eventlog.Event{
			Kind: eventlog.KindNew, Id: id, Type: typ, Side: side, Price: price, Quantity: quantity,
		})
		g.registry.onNew(liveOrder{id: id, side: side, price: price, quantity: quantity})
	}
	return out
}

func (g *Generator) appendCancelEvents(out []eventlog.Event, count int) []eventlog.Event {
	for i := 0; i < count; i++ {
		o, ok := g.registry.randomLive(g.rng)
		if !ok {
			return out
		}
		out = append(out, eventlog.Event{Kind: eventlog.KindCancel, Id: o.id})
		g.registry.onCancel(o.id)
	}
	return out
}

func (g *Generator) randomSide() orderbook.Side {
	if g.rng.Intn(2) == 0 {
		return orderbook.Buy
	}
	return orderbook.Sell
}

func (g *Generator) randomOrderType() orderbook.OrderType {
	return orderbook.OrderType(g.rng.Intn(5))
}

func (g *Generator) randomQuantity() orderbook.Quantity {
	return orderbook.Quantity(math.Abs(g.rng.NormFloat64())*100) + 1
}

// randomPrice samples a price around mid with a log-normal spread that
// widens with the sampled tail probability, mirroring the source's
// getRandomOrderPrice: bids sample below the mid, asks above it.
func (g *Generator) randomPrice(mid float64, side orderbook.Side) orderbook.Price {
	u := g.rng.Float64() - 0.5 // U(-0.5, 0.5)
	d := -g.cfg.State.B * math.Log(1-2*math.Abs(u))

	var spread float64
	if side == orderbook.Buy {
		spread = math.Exp(-d)
	} else {
		spread = math.Exp(d)
	}

	raw := float64(orderbook.TickMultiplier) * mid * spread
	price := orderbook.Price(math.Round(raw))
	if price < 1 {
		price = 1
	}
	return price
}
