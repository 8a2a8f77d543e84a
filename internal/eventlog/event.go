package eventlog

import (
	"fmt"
	"strconv"
	"strings"

	"matchbook/domain/orderbook"
)

// Kind is the leading integer of a CSV line, identifying which of the three
// event shapes follows.
type Kind uint8

const (
	KindNew Kind = iota
	KindCancel
	KindModify
)

// Event is the decoded form of one CSV line: a request to Add, Cancel, or
// Modify against an orderbook.OrderBook. Only the fields relevant to Kind
// are meaningful; Encode/Decode only ever read the ones the format defines
// for that kind.
type Event struct {
	Kind     Kind
	Id       orderbook.OrderId
	Type     orderbook.OrderType
	Side     orderbook.Side
	Price    orderbook.Price
	Quantity orderbook.Quantity
}

// Encode renders e as the line-oriented CSV format described in the
// interchange spec: "0,id,type,side,price,quantity" for new orders,
// "1,id" for cancels, "2,id,side,price,quantity" for modifies.
func (e Event) Encode() string {
	switch e.Kind {
	case KindNew:
		return fmt.Sprintf("0,%d,%d,%d,%d,%d", e.Id, e.Type, e.Side, e.Price, e.Quantity)
	case KindCancel:
		return fmt.Sprintf("1,%d", e.Id)
	case KindModify:
		return fmt.Sprintf("2,%d,%d,%d,%d", e.Id, e.Side, e.Price, e.Quantity)
	default:
		panic("eventlog: unknown event kind")
	}
}

// Decode parses one CSV line produced by Encode. Malformed lines (wrong
// field count, non-integer field) are reported as an error rather than
// panicking — callers such as the feed loop are expected to log and skip.
func Decode(line string) (Event, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) == 0 {
		return Event{}, fmt.Errorf("eventlog: empty line")
	}

	kind, err := strconv.ParseUint(fields[0], 10, 8)
	if err != nil {
		return Event{}, fmt.Errorf("eventlog: bad kind field %q: %w", fields[0], err)
	}

	switch Kind(kind) {
	case KindNew:
		if len(fields) != 6 {
			return Event{}, fmt.Errorf("eventlog: new-order line has %d fields, want 6", len(fields))
		}
		id, err1 := strconv.ParseUint(fields[1], 10, 64)
		typ, err2 := strconv.ParseInt(fields[2], 10, 64)
		side, err3 := strconv.ParseInt(fields[3], 10, 64)
		price, err4 := strconv.ParseInt(fields[4], 10, 64)
		qty, err5 := strconv.ParseUint(fields[5], 10, 64)
		if err := firstErr(err1, err2, err3, err4, err5); err != nil {
			return Event{}, fmt.Errorf("eventlog: bad new-order line %q: %w", line, err)
		}
		return Event{
			Kind:     KindNew,
			Id:       id,
			Type:     orderbook.OrderType(typ),
			Side:     orderbook.Side(side),
			Price:    price,
			Quantity: qty,
		}, nil

	case KindCancel:
		if len(fields) != 2 {
			return Event{}, fmt.Errorf("eventlog: cancel line has %d fields, want 2", len(fields))
		}
		id, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return Event{}, fmt.Errorf("eventlog: bad cancel line %q: %w", line, err)
		}
		return Event{Kind: KindCancel, Id: id}, nil

	case KindModify:
		if len(fields) != 5 {
			return Event{}, fmt.Errorf("eventlog: modify line has %d fields, want 5", len(fields))
		}
		id, err1 := strconv.ParseUint(fields[1], 10, 64)
		side, err2 := strconv.ParseInt(fields[2], 10, 64)
		price, err3 := strconv.ParseInt(fields[3], 10, 64)
		qty, err4 := strconv.ParseUint(fields[4], 10, 64)
		if err := firstErr(err1, err2, err3, err4); err != nil {
			return Event{}, fmt.Errorf("eventlog: bad modify line %q: %w", line, err)
		}
		return Event{
			Kind:     KindModify,
			Id:       id,
			Side:     orderbook.Side(side),
			Price:    price,
			Quantity: qty,
		}, nil

	default:
		return Event{}, fmt.Errorf("eventlog: unknown kind %d", kind)
	}
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Apply dispatches e against book, the same entry point a direct caller
// would use for the equivalent Add/Cancel/Modify call.
func Apply(book *orderbook.OrderBook, e Event) {
	switch e.Kind {
	case KindNew:
		book.Add(orderbook.NewOrder(e.Id, e.Type, e.Side, e.Price, e.Quantity))
	case KindCancel:
		book.Cancel(e.Id)
	case KindModify:
		book.Modify(orderbook.OrderModify{Id: e.Id, Side: e.Side, Price: e.Price, Quantity: e.Quantity})
	}
}
