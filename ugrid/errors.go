package ugrid

import (
	"errors"

	"github.com/robert-malhotra/go-ugrid/internal/section"
)

// Common errors
var (
	// ErrMalformedHeader is returned when a stream ends before the seven
	// header counts have been read.
	ErrMalformedHeader = errors.New("ugrid header is ill-formed")

	// ErrTruncated is returned when a stream ends inside a section after
	// a well-formed header. There is no recovery: decoding is
	// all-or-nothing and a failed decode produces no mesh.
	ErrTruncated = section.ErrExhausted
)
