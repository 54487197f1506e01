package ugrid

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/robert-malhotra/go-ugrid/internal/section"
)

// labelSources is the priority order of cell-data keys consulted for
// surface boundary tags on write. A surface block with none of these
// gets an all-ones tag array.
var labelSources = []string{RefLabel, "medit:ref", "gmsh:physical", "flac3d:zone"}

// WriteFile writes mesh to path. The on-disk variant is resolved from
// the filename; see VariantForFilename. A partially written file is
// removed on failure.
func WriteFile(path string, mesh *Mesh, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := Write(f, mesh, VariantForFilename(path), opts...); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// Write encodes mesh to w using the given variant, mirroring the decode
// section order. Cell types the format does not know are skipped with a
// warning on the configured logger; everything else is still written.
func Write(w io.Writer, mesh *Mesh, v Variant, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	counts := make(map[CellType]int, len(mesh.Cells))
	for ct, block := range mesh.Cells {
		if ct.NumVertices() == 0 {
			o.log.Warn("skipping cell type unknown to the UGRID format",
				zap.String("cell_type", string(ct)))
			continue
		}
		counts[ct] = len(block)
	}

	sw := section.NewWriter(w, v.cfg)

	header := []int64{
		int64(len(mesh.Points)),
		int64(counts[Triangle]), int64(counts[Quad]),
		int64(counts[Tetra]), int64(counts[Pyramid]),
		int64(counts[Wedge]), int64(counts[Hexahedron]),
	}

	// Fortran record lengths: the header record, then one record for
	// points through the last volume block.
	nints := counts[Triangle]*4 + counts[Quad]*5 + counts[Tetra]*4 +
		counts[Pyramid]*5 + counts[Wedge]*6 + counts[Hexahedron]*8
	headerBytes := headerLen * v.cfg.Int.Width
	dataBytes := 3*len(mesh.Points)*v.cfg.Float.Width + nints*v.cfg.Int.Width

	if err := sw.WriteRecordMark(headerBytes); err != nil {
		return fmt.Errorf("writing header record mark: %w", err)
	}
	if err := sw.WriteInts(header, headerLen); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := sw.WriteRecordMark(headerBytes); err != nil {
		return fmt.Errorf("writing header record mark: %w", err)
	}
	if err := sw.WriteRecordMark(dataBytes); err != nil {
		return fmt.Errorf("writing data record mark: %w", err)
	}

	flat := make([]float64, 0, 3*len(mesh.Points))
	for _, p := range mesh.Points {
		flat = append(flat, p[0], p[1], p[2])
	}
	if err := sw.WriteFloats(flat, 3); err != nil {
		return fmt.Errorf("writing points: %w", err)
	}

	for _, ct := range surfaceTypes {
		if counts[ct] == 0 {
			continue
		}
		if err := writeConnectivity(sw, mesh.Cells[ct], ct, nil); err != nil {
			return err
		}
	}

	for _, ct := range surfaceTypes {
		n := counts[ct]
		if n == 0 {
			continue
		}
		// Column shape 1 keeps the text form at one tag per line.
		if err := sw.WriteInts(surfaceLabels(mesh, ct, n), 1); err != nil {
			return fmt.Errorf("writing %s boundary tags: %w", ct, err)
		}
	}

	for _, ct := range volumeTypes {
		if counts[ct] == 0 {
			continue
		}
		var perm []int
		if ct == Pyramid {
			perm = pyramidEncode
		}
		if err := writeConnectivity(sw, mesh.Cells[ct], ct, perm); err != nil {
			return err
		}
	}
	// Volume tags are never written; the format has no field for them.

	if err := sw.WriteRecordMark(dataBytes); err != nil {
		return fmt.Errorf("writing trailing record mark: %w", err)
	}
	return sw.Flush()
}

// writeConnectivity writes one cell block with one-based vertex indices
// and, when perm is non-nil, each row's columns gathered by perm.
func writeConnectivity(sw *section.Writer, block [][]int64, ct CellType, perm []int) error {
	cols := ct.NumVertices()
	flat := make([]int64, 0, len(block)*cols)
	for _, row := range block {
		for j := 0; j < cols; j++ {
			src := j
			if perm != nil {
				src = perm[j]
			}
			flat = append(flat, row[src]+1)
		}
	}
	if err := sw.WriteInts(flat, cols); err != nil {
		return fmt.Errorf("writing %s connectivity: %w", ct, err)
	}
	return nil
}

// surfaceLabels picks the boundary tag array for a surface block,
// falling back through labelSources in order, then to all ones. A
// source whose length does not match the block is passed over.
func surfaceLabels(mesh *Mesh, ct CellType, n int) []int64 {
	out := make([]int64, n)
	if data, ok := mesh.CellData[ct]; ok {
		for _, name := range labelSources {
			if vals, ok := data[name]; ok && len(vals) == n {
				for i, v := range vals {
					out[i] = int64(v)
				}
				return out
			}
		}
	}
	for i := range out {
		out[i] = 1
	}
	return out
}
