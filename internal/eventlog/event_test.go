package eventlog

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []Event{
		{Kind: KindNew, Id: 7, Type: 1, Side: 0, Price: 100, Quantity: 5},
		{Kind: KindCancel, Id: 7},
		{Kind: KindModify, Id: 7, Side: 1, Price: 95, Quantity: 3},
	}
	for _, e := range cases {
		line := e.Encode()
		got, err := Decode(line)
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", line, err)
		}
		if got != e {
			t.Fatalf("round trip mismatch: got %+v, want %+v (line %q)", got, e, line)
		}
	}
}

func TestDecodeRejectsMalformedLines(t *testing.T) {
	bad := []string{"", "9,1,2,3,4,5", "0,1,2,3", "1", "2,1,2"}
	for _, line := range bad {
		if _, err := Decode(line); err == nil {
			t.Fatalf("Decode(%q) should have failed", line)
		}
	}
}

func TestFixedNewOrderLineFormat(t *testing.T) {
	e := Event{Kind: KindNew, Id: 3, Type: 4, Side: 1, Price: 102, Quantity: 10}
	if got, want := e.Encode(), "0,3,4,1,102,10"; got != want {
		t.Fatalf("Encode() = %q, want %q", got, want)
	}
}
