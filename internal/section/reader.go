package section

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Reader reads consecutive sections from a UGRID stream.
type Reader struct {
	br  *bufio.Reader
	cfg Config
}

// NewReader creates a reader over r with the given configuration.
// The reader owns the stream: no other consumer may read from r while
// the Reader is in use.
func NewReader(r io.Reader, cfg Config) *Reader {
	return &Reader{br: bufio.NewReader(r), cfg: cfg}
}

// ReadInts reads the next count integers and advances the cursor.
// Fewer than count available values yields ErrExhausted.
func (r *Reader) ReadInts(count int) ([]int64, error) {
	out := make([]int64, count)
	if r.cfg.Encoding == Text {
		for i := range out {
			tok, err := r.nextToken()
			if err != nil {
				return nil, err
			}
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parsing integer %q: %w", tok, err)
			}
			out[i] = v
		}
		return out, nil
	}

	w := r.cfg.Int.Width
	buf := make([]byte, count*w)
	if _, err := io.ReadFull(r.br, buf); err != nil {
		return nil, exhausted(err)
	}
	for i := range out {
		out[i] = r.cfg.Int.Int(buf[i*w : (i+1)*w])
	}
	return out, nil
}

// ReadFloats reads the next count floating-point values and advances the
// cursor. Fewer than count available values yields ErrExhausted.
func (r *Reader) ReadFloats(count int) ([]float64, error) {
	out := make([]float64, count)
	if r.cfg.Encoding == Text {
		for i := range out {
			tok, err := r.nextToken()
			if err != nil {
				return nil, err
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("parsing float %q: %w", tok, err)
			}
			out[i] = v
		}
		return out, nil
	}

	w := r.cfg.Float.Width
	buf := make([]byte, count*w)
	if _, err := io.ReadFull(r.br, buf); err != nil {
		return nil, exhausted(err)
	}
	for i := range out {
		out[i] = r.cfg.Float.Float(buf[i*w : (i+1)*w])
	}
	return out, nil
}

// ReadRecordMark consumes one Fortran record-length mark. The mark's
// numeric value is discarded, not validated against the record it frames;
// the framing contract belongs to the producing Fortran runtime. For
// non-Fortran encodings this is a no-op.
func (r *Reader) ReadRecordMark() error {
	if r.cfg.Encoding != BinaryFortran {
		return nil
	}
	buf := make([]byte, markWidth)
	if _, err := io.ReadFull(r.br, buf); err != nil {
		return exhausted(err)
	}
	return nil
}

// nextToken returns the next run of non-whitespace bytes.
func (r *Reader) nextToken() (string, error) {
	// Skip leading whitespace.
	var b byte
	var err error
	for {
		b, err = r.br.ReadByte()
		if err != nil {
			return "", exhausted(err)
		}
		if !isSpace(b) {
			break
		}
	}

	tok := []byte{b}
	for {
		b, err = r.br.ReadByte()
		if err == io.EOF {
			return string(tok), nil
		}
		if err != nil {
			return "", err
		}
		if isSpace(b) {
			return string(tok), nil
		}
		tok = append(tok, b)
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

// exhausted maps end-of-stream conditions onto ErrExhausted so callers
// can distinguish truncation from malformed content.
func exhausted(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrExhausted
	}
	return err
}
