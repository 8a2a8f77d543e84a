// Command gateway wires the matching engine together with its ambient
// stack — event log, trade journal, trade broadcaster, and an optional
// Kafka order feed — and runs until interrupted.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"matchbook/domain/orderbook"
	"matchbook/internal/broadcaster"
	"matchbook/internal/eventlog"
	"matchbook/internal/feed"
	"matchbook/internal/journal"
	"matchbook/service"
)

func main() {
	var (
		eventLogDir = flag.String("eventlog-dir", "./eventlog", "directory for the durable event log")
		journalDir  = flag.String("journal-dir", "", "directory for the pebble trade journal (empty disables it)")
		brokerList  = flag.String("kafka-brokers", "", "comma-separated Kafka broker addresses (empty disables Kafka)")
		tradesTopic = flag.String("trades-topic", "trades", "Kafka topic to publish trades to")
		ordersTopic = flag.String("orders-topic", "orders", "Kafka topic to consume order events from")
		feedGroup   = flag.String("feed-group", "matchbook-gateway", "consumer group id for the order feed")
	)
	flag.Parse()

	// ---------------- Event log ----------------

	elog, err := eventlog.Open(eventlog.Config{Dir: *eventLogDir, SegmentSize: 64 << 20})
	if err != nil {
		log.Fatalf("gateway: event log init failed: %v", err)
	}

	// ---------------- Domain ----------------

	book := orderbook.New()

	// ---------------- Optional ambient components ----------------

	opts := []service.Option{service.WithEventLog(elog)}

	var jrnl *journal.Journal
	if *journalDir != "" {
		jrnl, err = journal.Open(*journalDir)
		if err != nil {
			log.Fatalf("gateway: journal init failed: %v", err)
		}
		opts = append(opts, service.WithJournal(jrnl))
	}

	var brokers []string
	if *brokerList != "" {
		brokers = strings.Split(*brokerList, ",")
	}

	var bcast *broadcaster.Broadcaster
	if len(brokers) > 0 {
		bcast, err = broadcaster.New(brokers, *tradesTopic, 4096)
		if err != nil {
			log.Fatalf("gateway: broadcaster init failed: %v", err)
		}
		opts = append(opts, service.WithBroadcaster(bcast))
	}

	svc := service.New(book, opts...)

	// ---------------- Recovery ----------------

	if lastSeq, err := svc.ReplayEventLog(*eventLogDir); err != nil {
		log.Fatalf("gateway: event log replay failed: %v", err)
	} else if lastSeq > 0 {
		log.Printf("gateway: recovered up to sequence %d", lastSeq)
	}

	// ---------------- Order feed ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if len(brokers) > 0 {
		f := feed.New(brokers, *ordersTopic, *feedGroup, book)
		go func() {
			if err := f.Run(ctx); err != nil {
				log.Printf("gateway: order feed stopped: %v", err)
			}
		}()
		defer f.Close()
	}

	log.Println("gateway: running")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Println("gateway: shutting down")
	cancel()
	if err := svc.Close(context.Background()); err != nil {
		log.Printf("gateway: shutdown error: %v", err)
	}
}
