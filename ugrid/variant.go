package ugrid

import (
	"encoding/binary"
	"sort"
	"strings"

	"github.com/robert-malhotra/go-ugrid/internal/scalar"
	"github.com/robert-malhotra/go-ugrid/internal/section"
)

// Variant identifies one of the eleven supported on-disk encodings of the
// UGRID format: ASCII text, or a binary encoding fixing integer width,
// float width, byte order, and C-style vs Fortran-style record framing.
// A Variant is resolved once per read or write call and threaded through
// that call only; it carries no cross-call state.
type Variant struct {
	name string
	cfg  section.Config
}

// Name returns the variant's filename token, e.g. "lb8" or "ascii".
func (v Variant) Name() string { return v.name }

// IsBinary reports whether the variant is one of the binary encodings.
func (v Variant) IsBinary() bool { return v.cfg.Encoding != section.Text }

func (v Variant) String() string { return v.name }

// The catalog of supported encodings, keyed by filename token.
//
// The token grammar follows the AFLR suffix convention: leading "l" for
// little-endian, "b" for C-style binary, "r" for Fortran-style binary,
// the digit for float width, trailing "l" for 8-byte integers. Fortran
// variants always use 4-byte integers.
var variants = map[string]Variant{
	"ascii": {"ascii", section.Config{Encoding: section.Text,
		Int: scalar.Type{Width: 4, Order: binary.LittleEndian}, Float: scalar.Type{Width: 8, Order: binary.LittleEndian}}},
	"b8l": {"b8l", section.Config{Encoding: section.BinaryC,
		Int: scalar.Type{Width: 8, Order: binary.BigEndian}, Float: scalar.Type{Width: 8, Order: binary.BigEndian}}},
	"b8": {"b8", section.Config{Encoding: section.BinaryC,
		Int: scalar.Type{Width: 4, Order: binary.BigEndian}, Float: scalar.Type{Width: 8, Order: binary.BigEndian}}},
	"b4": {"b4", section.Config{Encoding: section.BinaryC,
		Int: scalar.Type{Width: 4, Order: binary.BigEndian}, Float: scalar.Type{Width: 4, Order: binary.BigEndian}}},
	"lb8l": {"lb8l", section.Config{Encoding: section.BinaryC,
		Int: scalar.Type{Width: 8, Order: binary.LittleEndian}, Float: scalar.Type{Width: 8, Order: binary.LittleEndian}}},
	"lb8": {"lb8", section.Config{Encoding: section.BinaryC,
		Int: scalar.Type{Width: 4, Order: binary.LittleEndian}, Float: scalar.Type{Width: 8, Order: binary.LittleEndian}}},
	"lb4": {"lb4", section.Config{Encoding: section.BinaryC,
		Int: scalar.Type{Width: 4, Order: binary.LittleEndian}, Float: scalar.Type{Width: 4, Order: binary.LittleEndian}}},
	"r8": {"r8", section.Config{Encoding: section.BinaryFortran,
		Int: scalar.Type{Width: 4, Order: binary.BigEndian}, Float: scalar.Type{Width: 8, Order: binary.BigEndian}}},
	"r4": {"r4", section.Config{Encoding: section.BinaryFortran,
		Int: scalar.Type{Width: 4, Order: binary.BigEndian}, Float: scalar.Type{Width: 4, Order: binary.BigEndian}}},
	"lr8": {"lr8", section.Config{Encoding: section.BinaryFortran,
		Int: scalar.Type{Width: 4, Order: binary.LittleEndian}, Float: scalar.Type{Width: 8, Order: binary.LittleEndian}}},
	"lr4": {"lr4", section.Config{Encoding: section.BinaryFortran,
		Int: scalar.Type{Width: 4, Order: binary.LittleEndian}, Float: scalar.Type{Width: 4, Order: binary.LittleEndian}}},
}

// ASCII is the default variant used when a filename carries no
// recognized variant token.
var ASCII = variants["ascii"]

// VariantForFilename resolves the variant encoded in a filename of the
// form <name>.<token>.ugrid. An absent or unrecognized token resolves to
// ASCII; that silent fallback is the documented convention, not an error.
func VariantForFilename(filename string) Variant {
	parts := strings.Split(filename, ".")
	if len(parts) > 1 {
		if v, ok := variants[parts[len(parts)-2]]; ok {
			return v
		}
	}
	return ASCII
}

// VariantNames returns the catalog's filename tokens in sorted order.
func VariantNames() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
