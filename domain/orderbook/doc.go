// Package orderbook implements a single-instrument, price-time-priority
// limit order book and its continuous matching engine.
//
// The book is single-writer: every exported method takes the same mutex,
// including the read-only ones, so callers never observe a torn snapshot.
// A background goroutine periodically prunes GoodForDay orders at a
// configured local market-close time; it is optional and can be disabled
// for deterministic tests via WithPruneThread(false).
package orderbook
