// Command generate produces synthetic order flow via a geometric-Brownian-
// motion mid-price walk, writing it either to a CSV file consumable by
// cmd/replay or directly onto a Kafka topic for the order feed.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"matchbook/infra/kafka"
	"matchbook/internal/generator"
)

func main() {
	var (
		ticks         = flag.Int("ticks", 10_000, "number of GBM time steps to simulate")
		eventsPerTick = flag.Int("events-per-tick", 4, "max combined new/cancel events per tick")
		seed          = flag.Int64("seed", time.Now().UnixNano(), "RNG seed")
		outPath       = flag.String("out", "", "CSV output path (ignored when -kafka-brokers is set)")
		brokerList    = flag.String("kafka-brokers", "", "comma-separated Kafka brokers to stream events to instead of a file")
		topic         = flag.String("topic", "orders", "Kafka topic to publish to when -kafka-brokers is set")
	)
	flag.Parse()

	if *outPath == "" && *brokerList == "" {
		log.Fatal("generate: one of -out or -kafka-brokers is required")
	}

	g := generator.New(generator.Config{
		State:         generator.DefaultMarketState(),
		Ticks:         *ticks,
		EventsPerTick: *eventsPerTick,
		Seed:          *seed,
	})
	events := g.Run()

	if *brokerList != "" {
		producer := kafka.NewProducer(strings.Split(*brokerList, ","), *topic)
		defer producer.Close()

		ctx := context.Background()
		for i, e := range events {
			key := []byte(fmt.Sprintf("%d", i))
			if err := producer.Send(ctx, key, []byte(e.Encode())); err != nil {
				log.Fatalf("generate: publish to kafka: %v", err)
			}
		}
		fmt.Printf("generate: published %d events to topic %q\n", len(events), *topic)
		return
	}

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("generate: create %s: %v", *outPath, err)
	}
	defer f.Close()

	for _, e := range events {
		if _, err := fmt.Fprintln(f, e.Encode()); err != nil {
			log.Fatalf("generate: write %s: %v", *outPath, err)
		}
	}
	fmt.Printf("generate: wrote %d events to %s\n", len(events), *outPath)
}
