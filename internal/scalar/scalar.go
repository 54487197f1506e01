// Package scalar describes the on-disk scalar layouts used by UGRID
// file variants.
//
// A UGRID variant fixes one integer layout and one floating-point layout
// for the whole file. Each layout is a width (4 or 8 bytes) plus a byte
// order. The reference tooling encodes these as dtype strings (">i8",
// "<f4"); here they are explicit values so the transcoder can branch on
// width and order directly instead of parsing strings.
package scalar

import (
	"encoding/binary"
	"math"
)

// Type is the layout of one scalar on disk: its byte width and byte order.
// The byte order is meaningless for text encodings and is ignored there.
type Type struct {
	Width int // 4 or 8
	Order binary.ByteOrder
}

// Int decodes one signed integer from buf, which must hold exactly
// t.Width bytes.
func (t Type) Int(buf []byte) int64 {
	if t.Width == 8 {
		return int64(t.Order.Uint64(buf))
	}
	return int64(int32(t.Order.Uint32(buf)))
}

// PutInt encodes v into buf, which must hold exactly t.Width bytes.
// Values outside the 4-byte range are truncated, matching the cast
// behavior of the reference tooling.
func (t Type) PutInt(buf []byte, v int64) {
	if t.Width == 8 {
		t.Order.PutUint64(buf, uint64(v))
		return
	}
	t.Order.PutUint32(buf, uint32(int32(v)))
}

// Float decodes one IEEE-754 value from buf, which must hold exactly
// t.Width bytes.
func (t Type) Float(buf []byte) float64 {
	if t.Width == 8 {
		return math.Float64frombits(t.Order.Uint64(buf))
	}
	return float64(math.Float32frombits(t.Order.Uint32(buf)))
}

// PutFloat encodes v into buf, which must hold exactly t.Width bytes.
// A 4-byte layout rounds to float32 precision.
func (t Type) PutFloat(buf []byte, v float64) {
	if t.Width == 8 {
		t.Order.PutUint64(buf, math.Float64bits(v))
		return
	}
	t.Order.PutUint32(buf, math.Float32bits(float32(v)))
}
