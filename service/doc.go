// Package service is the single write entry point into the engine: it
// stamps every accepted call with a sequence number, appends it to the
// event log, drives the core orderbook, and forwards resulting trades to
// the journal and broadcaster. Direct callers and the replay CLI submit
// through OrderService's methods; the Kafka feed (package feed) applies its
// events to the book directly, so they are neither sequenced nor logged here.
package service
