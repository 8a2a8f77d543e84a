package eventlog

import "hash/crc32"

// CRC32 and CRC32Valid frame the checksum trailer the segment log appends
// to every record. The teacher's infra/wal/entry package referenced
// functions of these names without ever defining them; this is the actual
// implementation, using the IEEE polynomial via the standard library.
func CRC32(b []byte) uint32 {
	return crc32.ChecksumIEEE(b)
}

func CRC32Valid(b []byte, want uint32) bool {
	return crc32.ChecksumIEEE(b) == want
}
