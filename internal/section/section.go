// Package section provides sequential section I/O for UGRID streams.
//
// A UGRID file is a fixed sequence of homogeneous sections: the 7-count
// header, the point coordinates, then one connectivity or tag block per
// cell type. The Reader and Writer here expose exactly that shape — "read
// the next count scalars" and "write this array" — over an io.Reader or
// io.Writer cursor. There is no seeking; the stream is consumed and
// produced strictly front to back.
//
// The same two types cover all three encoding classes. Text sections are
// whitespace-delimited decimal. The binary classes reinterpret raw bytes
// per the configured scalar layouts, and the Fortran class additionally
// brackets its two records with 4-byte length marks handled by
// ReadRecordMark and WriteRecordMark.
package section

import (
	"errors"

	"github.com/robert-malhotra/go-ugrid/internal/scalar"
)

// Encoding is the on-disk encoding class of a UGRID variant.
type Encoding int

const (
	// Text is whitespace-delimited decimal text.
	Text Encoding = iota
	// BinaryC is raw binary with no record framing.
	BinaryC
	// BinaryFortran is raw binary bracketed by Fortran record-length marks.
	BinaryFortran
)

// Config fixes the encoding class and scalar layouts for one stream.
// It is derived from the resolved file variant and never changes while
// a Reader or Writer is in use.
type Config struct {
	Encoding Encoding
	Int      scalar.Type
	Float    scalar.Type
}

// markWidth is the byte width of a Fortran record-length mark. All
// Fortran-framed variants use 4-byte integers regardless of the data
// integer width.
const markWidth = 4

// ErrExhausted is returned when the stream ends before a section's
// declared element count has been read.
var ErrExhausted = errors.New("input exhausted before end of section")
