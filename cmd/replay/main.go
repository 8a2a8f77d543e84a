// Command replay drives the matching engine from a CSV file of order
// events (the interchange format also used by cmd/generate and the Kafka
// feed) and prints the resulting trades and final book state. It doubles
// as the CSV-loader external collaborator and a benchmark harness.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"matchbook/domain/orderbook"
	"matchbook/internal/eventlog"
	"matchbook/internal/journal"
	"matchbook/service"
)

func main() {
	var (
		csvPath    = flag.String("csv", "", "path to a CSV file of order events (required)")
		journalDir = flag.String("journal-dir", "", "directory for the pebble trade journal (empty disables it)")
		printBook  = flag.Bool("print-book", true, "print the final book state after replay")
	)
	flag.Parse()

	if *csvPath == "" {
		log.Fatal("replay: -csv is required")
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("replay: open %s: %v", *csvPath, err)
	}
	defer f.Close()

	book := orderbook.New(orderbook.WithPruneThread(false))

	var opts []service.Option
	var jrnl *journal.Journal
	if *journalDir != "" {
		jrnl, err = journal.Open(*journalDir)
		if err != nil {
			log.Fatalf("replay: journal init failed: %v", err)
		}
		defer jrnl.Close()
		opts = append(opts, service.WithJournal(jrnl))
	}
	svc := service.New(book, opts...)

	scanner := bufio.NewScanner(f)
	lineNo := 0
	totalTrades := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}

		event, err := eventlog.Decode(line)
		if err != nil {
			log.Printf("replay: line %d: %v (skipped)", lineNo, err)
			continue
		}

		var trades []orderbook.Trade
		switch event.Kind {
		case eventlog.KindNew:
			_, trades = svc.PlaceOrder(orderbook.NewOrder(event.Id, event.Type, event.Side, event.Price, event.Quantity))
		case eventlog.KindCancel:
			svc.Cancel(event.Id)
		case eventlog.KindModify:
			_, trades = svc.Modify(orderbook.OrderModify{Id: event.Id, Side: event.Side, Price: event.Price, Quantity: event.Quantity})
		}

		for _, t := range trades {
			fmt.Printf("trade bid=%d ask=%d bidPrice=%d askPrice=%d qty=%d\n", t.BidId, t.AskId, t.BidPrice, t.AskPrice, t.Quantity)
			totalTrades++
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("replay: reading %s: %v", *csvPath, err)
	}

	fmt.Printf("replay: processed %d lines, %d trades, %d resting orders\n", lineNo, totalTrades, book.Size())

	if *printBook {
		bids, asks := book.GetOrderInfos()
		fmt.Println("bids (best to worst):")
		for _, l := range bids {
			fmt.Printf("  %d @ %d\n", l.Quantity, l.Price)
		}
		fmt.Println("asks (best to worst):")
		for _, l := range asks {
			fmt.Printf("  %d @ %d\n", l.Quantity, l.Price)
		}
	}
}
