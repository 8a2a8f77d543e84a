package eventlog

import "time"

// RecordType distinguishes a payload-bearing record from anything the log
// might carry that isn't an order event. Today there is exactly one kind,
// but the byte is part of the on-disk frame, so it is kept explicit rather
// than assumed.
type RecordType uint8

const (
	RecordEvent RecordType = iota
)

// Record is one framed entry in the segment log: an order event tagged
// with the sequence number the service layer assigned it and the wall
// time it was appended.
type Record struct {
	Type RecordType
	Seq  uint64
	Time int64
	Data []byte
}

// NewRecord wraps an already-encoded event line for appending.
func NewRecord(seq uint64, line string) *Record {
	return &Record{
		Type: RecordEvent,
		Seq:  seq,
		Time: time.Now().UnixNano(),
		Data: []byte(line),
	}
}
