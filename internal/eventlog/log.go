package eventlog

import (
	"encoding/binary"
	"os"
	"path/filepath"
)

// Config configures a Log's on-disk layout.
type Config struct {
	Dir string
	// SegmentSize is the approximate byte size at which the log rotates to
	// a fresh segment file. Rotation checks after a full record is
	// written, so a segment may exceed this by up to one record's size.
	SegmentSize int64
}

// Log is a segment-based, CRC-framed durable log of order events. It is
// append-only and single-writer: callers serialize their own Append calls
// (the service layer does this by appending under the same critical
// section it uses to call into the book).
type Log struct {
	dir      string
	segSize  int64
	current  *segment
	segIndex int
}

// Open creates cfg.Dir if needed and opens (or creates) its first segment.
func Open(cfg Config) (*Log, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}
	segSize := cfg.SegmentSize
	if segSize <= 0 {
		segSize = 64 << 20
	}

	seg, err := openSegment(cfg.Dir, 0)
	if err != nil {
		return nil, err
	}
	return &Log{dir: cfg.Dir, segSize: segSize, current: seg}, nil
}

// Append writes r as one framed record: [type:1][seq:8][time:8][len:4]
// [payload][crc:4], rotating to a new segment if this write crosses the
// configured size.
func (l *Log) Append(r *Record) error {
	payloadLen := uint32(len(r.Data))

	buf := make([]byte, 1+8+8+4+payloadLen+4)
	buf[0] = byte(r.Type)
	binary.BigEndian.PutUint64(buf[1:9], r.Seq)
	binary.BigEndian.PutUint64(buf[9:17], uint64(r.Time))
	binary.BigEndian.PutUint32(buf[17:21], payloadLen)
	copy(buf[21:], r.Data)

	crc := CRC32(buf[:21+payloadLen])
	binary.BigEndian.PutUint32(buf[21+payloadLen:], crc)

	if err := l.current.append(buf); err != nil {
		return err
	}
	if l.current.offset >= l.segSize {
		return l.rotate()
	}
	return nil
}

func (l *Log) rotate() error {
	if err := l.current.close(); err != nil {
		return err
	}
	l.segIndex++

	seg, err := openSegment(l.dir, l.segIndex)
	if err != nil {
		return err
	}
	l.current = seg
	return nil
}

// Close closes the currently open segment.
func (l *Log) Close() error {
	return l.current.close()
}

// TruncateBefore deletes every segment whose highest sequence number is at
// most seq — used after a downstream consumer (the trade journal, a
// snapshot) has durably absorbed everything up to that point.
func (l *Log) TruncateBefore(seq uint64) error {
	files, err := filepath.Glob(filepath.Join(l.dir, "segment-*.log"))
	if err != nil {
		return err
	}
	for _, path := range files {
		maxSeq, err := maxSeqInSegment(path)
		if err != nil {
			continue
		}
		if maxSeq <= seq {
			_ = os.Remove(path)
		}
	}
	return nil
}
