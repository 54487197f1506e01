package section

import (
	"bufio"
	"io"
	"strconv"
)

// Writer writes consecutive sections to a UGRID stream.
//
// Text sections are emitted one row per line with single-space separators,
// matching the row shape of the array being written. Binary sections are
// raw scalars with no padding or alignment. Flush must be called once
// after the final section.
type Writer struct {
	bw  *bufio.Writer
	cfg Config
}

// NewWriter creates a writer over w with the given configuration.
// The writer owns the stream for the duration of the encode.
func NewWriter(w io.Writer, cfg Config) *Writer {
	return &Writer{bw: bufio.NewWriter(w), cfg: cfg}
}

// WriteInts writes vals as a section of rows with cols values each.
// len(vals) must be a multiple of cols. The column shape only affects
// text output; binary output is a flat scalar run either way.
func (w *Writer) WriteInts(vals []int64, cols int) error {
	if w.cfg.Encoding == Text {
		return w.writeTextRows(len(vals), cols, func(buf []byte, i int) []byte {
			return strconv.AppendInt(buf, vals[i], 10)
		})
	}

	width := w.cfg.Int.Width
	buf := make([]byte, width)
	for _, v := range vals {
		w.cfg.Int.PutInt(buf, v)
		if _, err := w.bw.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// WriteFloats writes vals as a section of rows with cols values each.
func (w *Writer) WriteFloats(vals []float64, cols int) error {
	if w.cfg.Encoding == Text {
		return w.writeTextRows(len(vals), cols, func(buf []byte, i int) []byte {
			return strconv.AppendFloat(buf, vals[i], 'g', -1, 64)
		})
	}

	width := w.cfg.Float.Width
	buf := make([]byte, width)
	for _, v := range vals {
		w.cfg.Float.PutFloat(buf, v)
		if _, err := w.bw.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// WriteRecordMark emits one Fortran record-length mark carrying nbytes,
// the byte length of the record it frames. For non-Fortran encodings
// this is a no-op.
func (w *Writer) WriteRecordMark(nbytes int) error {
	if w.cfg.Encoding != BinaryFortran {
		return nil
	}
	buf := make([]byte, markWidth)
	w.cfg.Int.Order.PutUint32(buf, uint32(nbytes))
	_, err := w.bw.Write(buf)
	return err
}

// Flush writes any buffered output to the underlying stream.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}

func (w *Writer) writeTextRows(n, cols int, appendVal func([]byte, int) []byte) error {
	buf := make([]byte, 0, 64)
	for i := 0; i < n; i += cols {
		buf = buf[:0]
		for j := 0; j < cols; j++ {
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = appendVal(buf, i+j)
		}
		buf = append(buf, '\n')
		if _, err := w.bw.Write(buf); err != nil {
			return err
		}
	}
	return nil
}
