// Package eventlog implements the CSV-derived wire encoding for order
// events and a segment-based durable log of them. Nothing in package
// orderbook depends on this package; it exists for external collaborators
// (the replay CLI, the gateway's startup recovery path, the Kafka feed) that
// need to record or replay a stream of Add/Cancel/Modify calls.
package eventlog
