package sample

import (
	"encoding/binary"
	"math"
)

// Canonical encoding contract. The statistical battery is only meaningful if
// the same raw entries always produce the same bit stream, so this mapping is
// fixed:
//
//   - integer-valued numeric entries: two's-complement int64, 64 bits MSB-first
//   - other numeric entries: IEEE-754 float64 bit pattern, 64 bits MSB-first
//   - char and string entries: UTF-8 bytes of the trimmed text, each byte
//     MSB-first
//
// The dataset-level sequences are the per-entry encodings concatenated in
// input order.

func encodeEntry(e Entry) []byte {
	switch e.Kind {
	case KindNumeric:
		buf := make([]byte, 8)
		if e.IsInt {
			binary.BigEndian.PutUint64(buf, uint64(e.Int))
		} else {
			binary.BigEndian.PutUint64(buf, math.Float64bits(e.Value))
		}
		return buf
	default:
		return []byte(e.Raw)
	}
}

func appendBits(bits []uint8, data []byte) []uint8 {
	for _, b := range data {
		for shift := 7; shift >= 0; shift-- {
			bits = append(bits, (b>>uint(shift))&1)
		}
	}
	return bits
}
