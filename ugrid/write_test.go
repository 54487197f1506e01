package ugrid

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWriteAsciiLayout(t *testing.T) {
	m := NewMesh()
	m.Points = [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	m.Cells[Triangle] = [][]int64{{0, 1, 2}}
	m.CellData[Triangle] = map[string][]float64{RefLabel: {7}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m, ASCII))

	want := `3 1 0 0 0 0 0
0 0 0
1 0 0
0 1 0
1 2 3
7
`
	require.Equal(t, want, buf.String())
}

func TestWritePyramidReorder(t *testing.T) {
	// The in-memory order [b a e c d] goes back to disk as [a b c d e]:
	// encode applies the inverse of the decode gather.
	m := NewMesh()
	m.Points = [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {0, 0, 1}}
	m.Cells[Pyramid] = [][]int64{{1, 0, 4, 2, 3}}
	m.CellData[Pyramid] = map[string][]float64{RefLabel: {0}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m, ASCII))

	want := `5 0 0 0 1 0 0
0 0 0
1 0 0
1 1 0
0 1 0
0 0 1
1 2 3 4 5
`
	require.Equal(t, want, buf.String())
}

func TestWriteLabelFallbackOrder(t *testing.T) {
	m := NewMesh()
	m.Points = [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
	m.Cells[Triangle] = [][]int64{{0, 1, 2}, {1, 3, 2}}
	// No ugrid:ref or medit:ref: gmsh:physical outranks flac3d:zone.
	m.CellData[Triangle] = map[string][]float64{
		"gmsh:physical": {5, 6},
		"flac3d:zone":   {9, 9},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m, ASCII))

	got, err := Read(&buf, ASCII)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 6}, got.CellData[Triangle][RefLabel])
}

func TestWriteLabelDefaultOnes(t *testing.T) {
	m := NewMesh()
	m.Points = [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	m.Cells[Triangle] = [][]int64{{0, 1, 2}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m, ASCII))

	got, err := Read(&buf, ASCII)
	require.NoError(t, err)
	require.Equal(t, []float64{1}, got.CellData[Triangle][RefLabel])
}

func TestWriteUnknownCellTypeSkipped(t *testing.T) {
	m := testMesh()
	m.Cells["polygon"] = [][]int64{{0, 1, 2, 3, 4, 5, 6}}

	core, logs := observer.New(zap.WarnLevel)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m, variants["lb8"], WithLogger(zap.New(core))))

	// One warning naming the skipped type, and nothing lost elsewhere.
	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "polygon", entries[0].ContextMap()["cell_type"])

	got, err := Read(&buf, variants["lb8"])
	require.NoError(t, err)
	assert.NotContains(t, got.Cells, CellType("polygon"))

	delete(m.Cells, "polygon")
	require.Equal(t, m, got)
}

func TestWriteZeroQuadOmitsBlocks(t *testing.T) {
	m := NewMesh()
	m.Points = [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	m.Cells[Triangle] = [][]int64{{0, 1, 2}}
	m.CellData[Triangle] = map[string][]float64{RefLabel: {4}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m, ASCII))

	want := `3 1 0 0 0 0 0
0 0 0
1 0 0
0 1 0
1 2 3
4
`
	// n_quad is zero in the header and no quad sections appear.
	require.Equal(t, want, buf.String())
}

func TestWriteFortranFraming(t *testing.T) {
	m := NewMesh()
	m.Points = [][3]float64{{0.5, 0, -1}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m, variants["r8"]))

	var want bytes.Buffer
	// Record 1: the 7-count header, 28 bytes of big-endian int32.
	binary.Write(&want, binary.BigEndian, int32(28))
	binary.Write(&want, binary.BigEndian, []int32{1, 0, 0, 0, 0, 0, 0})
	binary.Write(&want, binary.BigEndian, int32(28))
	// Record 2: the single point, 24 bytes of big-endian float64.
	binary.Write(&want, binary.BigEndian, int32(24))
	binary.Write(&want, binary.BigEndian, []float64{0.5, 0, -1})
	binary.Write(&want, binary.BigEndian, int32(24))

	require.Equal(t, want.Bytes(), buf.Bytes())
}

func TestWriteCBinaryHasNoFraming(t *testing.T) {
	m := NewMesh()
	m.Points = [][3]float64{{0.5, 0, -1}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m, variants["b8"]))

	// 7 int32 counts plus 3 float64 coordinates, nothing else.
	require.Equal(t, 28+24, buf.Len())
}
