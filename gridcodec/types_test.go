package gridcodec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ninegrid/gridcodec"
)

// TestVertexLayout checks row-major placement of the nine dots.
func TestVertexLayout(t *testing.T) {
	want := map[gridcodec.Vertex][2]int{
		1: {0, 0}, 2: {0, 1}, 3: {0, 2},
		4: {1, 0}, 5: {1, 1}, 6: {1, 2},
		7: {2, 0}, 8: {2, 1}, 9: {2, 2},
	}
	for v, rc := range want {
		assert.True(t, v.Valid())
		assert.Equal(t, rc[0], v.Row(), "Row(%d)", v)
		assert.Equal(t, rc[1], v.Col(), "Col(%d)", v)
	}
	assert.False(t, gridcodec.Vertex(0).Valid())
	assert.False(t, gridcodec.Vertex(10).Valid())
}

// TestNewEdge_Normalizes checks that the smaller vertex always comes first.
func TestNewEdge_Normalizes(t *testing.T) {
	assert.Equal(t, gridcodec.Edge{A: 1, B: 4}, gridcodec.NewEdge(4, 1))
	assert.Equal(t, gridcodec.Edge{A: 1, B: 4}, gridcodec.NewEdge(1, 4))
	assert.Equal(t, gridcodec.Edge{A: 2, B: 9}, gridcodec.Edge{A: 9, B: 2}.Normalized())
	assert.Equal(t, "6-8", gridcodec.NewEdge(8, 6).String())
}

// TestLegalEdges_Table checks table shape, ordering and copy semantics.
func TestLegalEdges_Table(t *testing.T) {
	edges := gridcodec.LegalEdges()
	require.Len(t, edges, gridcodec.EdgeCount)
	assert.Equal(t, gridcodec.Edge{A: 1, B: 2}, edges[0])
	assert.Equal(t, gridcodec.Edge{A: 8, B: 9}, edges[27])

	c := gridcodec.New()
	for i, e := range edges {
		assert.Less(t, e.A, e.B, "edge %d not normalized", i)
		if i > 0 {
			prev := edges[i-1]
			assert.True(t, prev.A < e.A || (prev.A == e.A && prev.B < e.B), "edge %d out of order", i)
		}
		idx, ok := c.IndexOf(e)
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}

	edges[0] = gridcodec.Edge{A: 9, B: 9}
	assert.Equal(t, gridcodec.Edge{A: 1, B: 2}, gridcodec.LegalEdges()[0], "table must not be mutable through the copy")
}

// TestHash_Helpers checks Len, Has, Valid and Distance.
func TestHash_Helpers(t *testing.T) {
	h := gridcodec.Hash(0b1011)
	assert.Equal(t, 3, h.Len())
	assert.True(t, h.Has(0))
	assert.False(t, h.Has(2))
	assert.False(t, h.Has(-1))
	assert.False(t, h.Has(gridcodec.EdgeCount))
	assert.True(t, gridcodec.Hash(gridcodec.MaxHash).Valid())
	assert.False(t, gridcodec.Hash(gridcodec.MaxHash+1).Valid())
	assert.Equal(t, 1, gridcodec.Distance(0b1011, 0b0001|0b1000))
	assert.Equal(t, gridcodec.EdgeCount, gridcodec.Distance(0, gridcodec.MaxHash))
}
