package ugrid

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/robert-malhotra/go-ugrid/internal/section"
)

// headerLen is the number of counts in a UGRID header: points, then the
// six cell types in format order.
const headerLen = 7

// Section order is fixed by the format: both surface blocks, both
// surface tag blocks, then the four volume blocks.
var (
	surfaceTypes = []CellType{Triangle, Quad}
	volumeTypes  = []CellType{Tetra, Pyramid, Wedge, Hexahedron}
)

// pyramidDecode gathers on-disk pyramid vertex columns [a b c d e] into
// the in-memory order [b a e c d], reconciling the UGRID node-ordering
// convention with the one used here. pyramidEncode is its inverse, so a
// written file decodes back to the original column order.
var (
	pyramidDecode = []int{1, 0, 4, 2, 3}
	pyramidEncode = []int{1, 0, 3, 4, 2}
)

// ReadFile reads the UGRID mesh at path. The on-disk variant is resolved
// from the filename; see VariantForFilename.
func ReadFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	mesh, err := Read(f, VariantForFilename(path))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return mesh, nil
}

// Read decodes one mesh from r using the given variant. The stream must
// be positioned at the start of the file and is consumed strictly
// sequentially. Decoding is all-or-nothing: on any failure no mesh is
// returned.
func Read(r io.Reader, v Variant) (*Mesh, error) {
	sr := section.NewReader(r, v.cfg)

	// The Fortran layout is two framed records: the header, then
	// everything from the points through the last volume block. The
	// record marks are skipped, not validated.
	if err := sr.ReadRecordMark(); err != nil {
		return nil, ErrMalformedHeader
	}
	header, err := sr.ReadInts(headerLen)
	if err != nil {
		if errors.Is(err, section.ErrExhausted) {
			return nil, ErrMalformedHeader
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if err := sr.ReadRecordMark(); err != nil {
		return nil, fmt.Errorf("reading header record mark: %w", err)
	}

	npoints := int(header[0])
	if npoints < 0 {
		return nil, fmt.Errorf("%w: negative point count %d", ErrMalformedHeader, npoints)
	}
	counts := make(map[CellType]int, headerLen-1)
	for i, ct := range []CellType{Triangle, Quad, Tetra, Pyramid, Wedge, Hexahedron} {
		n := header[i+1]
		if n < 0 {
			return nil, fmt.Errorf("%w: negative %s count %d", ErrMalformedHeader, ct, n)
		}
		counts[ct] = int(n)
	}

	if err := sr.ReadRecordMark(); err != nil {
		return nil, fmt.Errorf("reading data record mark: %w", err)
	}

	mesh := NewMesh()

	flat, err := sr.ReadFloats(3 * npoints)
	if err != nil {
		return nil, fmt.Errorf("reading points: %w", err)
	}
	mesh.Points = make([][3]float64, npoints)
	for i := range mesh.Points {
		mesh.Points[i] = [3]float64{flat[3*i], flat[3*i+1], flat[3*i+2]}
	}

	for _, ct := range surfaceTypes {
		if counts[ct] == 0 {
			continue
		}
		block, err := readConnectivity(sr, ct, counts[ct], nil)
		if err != nil {
			return nil, err
		}
		mesh.Cells[ct] = block
	}

	// Boundary tags follow in a second pass over the surface types.
	for _, ct := range surfaceTypes {
		n := counts[ct]
		if n == 0 {
			continue
		}
		tags, err := sr.ReadInts(n)
		if err != nil {
			return nil, fmt.Errorf("reading %s boundary tags: %w", ct, err)
		}
		refs := make([]float64, n)
		for i, tag := range tags {
			refs[i] = float64(tag)
		}
		mesh.CellData[ct] = map[string][]float64{RefLabel: refs}
	}

	for _, ct := range volumeTypes {
		n := counts[ct]
		if n == 0 {
			continue
		}
		var perm []int
		if ct == Pyramid {
			perm = pyramidDecode
		}
		block, err := readConnectivity(sr, ct, n, perm)
		if err != nil {
			return nil, err
		}
		mesh.Cells[ct] = block
		// The format carries no volume tags; a zero-filled array keeps
		// the per-type tag convention uniform.
		mesh.CellData[ct] = map[string][]float64{RefLabel: make([]float64, n)}
	}

	if err := sr.ReadRecordMark(); err != nil {
		return nil, fmt.Errorf("reading trailing record mark: %w", err)
	}

	return mesh, nil
}

// readConnectivity reads one cell block, converting the file's one-based
// vertex indices to zero-based and, when perm is non-nil, gathering each
// row's columns by perm.
func readConnectivity(sr *section.Reader, ct CellType, n int, perm []int) ([][]int64, error) {
	cols := ct.NumVertices()
	flat, err := sr.ReadInts(n * cols)
	if err != nil {
		return nil, fmt.Errorf("reading %s connectivity: %w", ct, err)
	}
	rows := make([][]int64, n)
	for i := range rows {
		row := make([]int64, cols)
		for j := range row {
			src := j
			if perm != nil {
				src = perm[j]
			}
			row[j] = flat[i*cols+src] - 1
		}
		rows[i] = row
	}
	return rows, nil
}
