package ugrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumVertices(t *testing.T) {
	tests := []struct {
		ct   CellType
		want int
	}{
		{Triangle, 3},
		{Quad, 4},
		{Tetra, 4},
		{Pyramid, 5},
		{Wedge, 6},
		{Hexahedron, 8},
		{CellType("polygon"), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.ct.NumVertices(), "cell type %s", tt.ct)
	}
}

func TestNumCells(t *testing.T) {
	assert.Equal(t, 0, NewMesh().NumCells())
	assert.Equal(t, 8, testMesh().NumCells())
}

func TestBounds(t *testing.T) {
	lo, hi := testMesh().Bounds()
	assert.Equal(t, [3]float64{0, 0, -0.5}, lo)
	assert.Equal(t, [3]float64{2.5, 1, 2}, hi)

	lo, hi = NewMesh().Bounds()
	assert.Equal(t, [3]float64{}, lo)
	assert.Equal(t, [3]float64{}, hi)
}
