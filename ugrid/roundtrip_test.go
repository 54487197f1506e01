package ugrid

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// testMesh builds a mesh with a nonzero count of every cell type. Point
// coordinates are exactly representable in float32 so round trips stay
// exact even through the 4-byte float variants.
func testMesh() *Mesh {
	m := NewMesh()
	m.Points = [][3]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
		{0.5, 0.5, 2}, {2.5, 0.25, -0.5},
	}
	m.Cells[Triangle] = [][]int64{{0, 1, 2}, {0, 2, 3}}
	m.Cells[Quad] = [][]int64{{4, 5, 6, 7}}
	m.Cells[Tetra] = [][]int64{{0, 1, 2, 8}}
	m.Cells[Pyramid] = [][]int64{{0, 1, 2, 3, 8}, {4, 5, 6, 7, 9}}
	m.Cells[Wedge] = [][]int64{{0, 1, 2, 4, 5, 6}}
	m.Cells[Hexahedron] = [][]int64{{0, 1, 2, 3, 4, 5, 6, 7}}
	m.CellData[Triangle] = map[string][]float64{RefLabel: {1, 2}}
	m.CellData[Quad] = map[string][]float64{RefLabel: {3}}
	m.CellData[Tetra] = map[string][]float64{RefLabel: {0}}
	m.CellData[Pyramid] = map[string][]float64{RefLabel: {0, 0}}
	m.CellData[Wedge] = map[string][]float64{RefLabel: {0}}
	m.CellData[Hexahedron] = map[string][]float64{RefLabel: {0}}
	return m
}

func TestRoundTripAllVariants(t *testing.T) {
	mesh := testMesh()
	for _, name := range VariantNames() {
		t.Run(name, func(t *testing.T) {
			v := variants[name]
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, mesh, v))

			got, err := Read(&buf, v)
			require.NoError(t, err)
			require.Equal(t, mesh, got)
		})
	}
}

func TestAsciiBinaryEquivalence(t *testing.T) {
	mesh := testMesh()

	var ascii bytes.Buffer
	require.NoError(t, Write(&ascii, mesh, ASCII))
	fromAscii, err := Read(&ascii, ASCII)
	require.NoError(t, err)

	for _, name := range []string{"b8l", "lb4", "r8", "lr4"} {
		v := variants[name]
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, mesh, v))
		fromBinary, err := Read(&buf, v)
		require.NoError(t, err)
		require.Equal(t, fromAscii, fromBinary, "variant %s", name)
	}
}

func TestRoundTripIndexBase(t *testing.T) {
	mesh := testMesh()
	npoints := int64(len(mesh.Points))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, mesh, ASCII))
	got, err := Read(&buf, ASCII)
	require.NoError(t, err)

	for ct, block := range got.Cells {
		for _, row := range block {
			for _, idx := range row {
				require.GreaterOrEqual(t, idx, int64(0), "cell type %s", ct)
				require.Less(t, idx, npoints, "cell type %s", ct)
			}
		}
	}
}

func TestRoundTripFiles(t *testing.T) {
	mesh := testMesh()
	dir := t.TempDir()

	for _, name := range []string{"ascii", "b8", "lb8l", "lr8"} {
		path := filepath.Join(dir, "mesh."+name+".ugrid")
		require.NoError(t, WriteFile(path, mesh))

		got, err := ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, mesh, got, "variant %s", name)
	}
}
