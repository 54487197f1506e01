package ugrid

import "gonum.org/v1/gonum/floats"

// CellType names one of the element kinds a UGRID file can carry.
type CellType string

// The six cell types of the UGRID format: two surface types followed by
// four volume types.
const (
	Triangle   CellType = "triangle"
	Quad       CellType = "quad"
	Tetra      CellType = "tetra"
	Pyramid    CellType = "pyramid"
	Wedge      CellType = "wedge"
	Hexahedron CellType = "hexahedron"
)

// NumVertices returns the number of vertices per cell of this type, or 0
// for a type the UGRID format does not know.
func (c CellType) NumVertices() int {
	switch c {
	case Triangle:
		return 3
	case Quad, Tetra:
		return 4
	case Pyramid:
		return 5
	case Wedge:
		return 6
	case Hexahedron:
		return 8
	default:
		return 0
	}
}

// RefLabel is the cell-data key under which UGRID boundary tags are
// stored on decode.
const RefLabel = "ugrid:ref"

// Mesh is the in-memory form of a UGRID file.
//
// Points holds one xyz coordinate triple per node. Cells maps each
// present cell type to its connectivity, one row of zero-based vertex
// indices per cell. CellData maps each present cell type to named
// per-cell arrays; decode attaches boundary tags for surface types and
// zero-filled tags for volume types under RefLabel. Types with zero
// cells never appear in either map.
type Mesh struct {
	Points   [][3]float64
	Cells    map[CellType][][]int64
	CellData map[CellType]map[string][]float64
}

// NewMesh returns an empty mesh with initialized maps.
func NewMesh() *Mesh {
	return &Mesh{
		Cells:    make(map[CellType][][]int64),
		CellData: make(map[CellType]map[string][]float64),
	}
}

// NumCells returns the total cell count across all types.
func (m *Mesh) NumCells() int {
	n := 0
	for _, block := range m.Cells {
		n += len(block)
	}
	return n
}

// Bounds returns the axis-aligned bounding box of the mesh points.
// Both corners are zero for a mesh with no points.
func (m *Mesh) Bounds() (lo, hi [3]float64) {
	if len(m.Points) == 0 {
		return
	}
	coords := make([]float64, len(m.Points))
	for axis := 0; axis < 3; axis++ {
		for i, p := range m.Points {
			coords[i] = p[axis]
		}
		lo[axis] = floats.Min(coords)
		hi[axis] = floats.Max(coords)
	}
	return
}
