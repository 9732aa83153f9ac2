// Package gridcodec defines the vertex, edge and hash types, and the fixed
// legal edge table of the nine-dot grid.
package gridcodec

import (
	"fmt"
	"math/bits"
)

const (
	// GridSize is the number of dots per side of the grid.
	GridSize = 3
	// VertexCount is the number of dots on the grid.
	VertexCount = GridSize * GridSize
	// EdgeCount is the number of legal edges, and so the number of bits in a Hash.
	EdgeCount = len(legalEdges)
	// MaxHash is the encoding of the full edge set: 2^28 - 1.
	MaxHash = 1<<EdgeCount - 1
)

// Vertex is a dot on the grid, numbered 1..9 in row-major order.
type Vertex int

// Valid reports whether v lies in [1, VertexCount].
func (v Vertex) Valid() bool {
	return v >= 1 && v <= VertexCount
}

// Row returns the 0-based row of v in the 3×3 layout.
func (v Vertex) Row() int {
	return (int(v) - 1) / GridSize
}

// Col returns the 0-based column of v in the 3×3 layout.
func (v Vertex) Col() int {
	return (int(v) - 1) % GridSize
}

// Edge is an undirected pair of vertices, stored with A < B.
type Edge struct {
	A, B Vertex
}

// NewEdge returns the normalized edge between a and b, smaller vertex first.
// It does not check legality; see Codec.IndexOf.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: Vertex(a), B: Vertex(b)}
}

// Normalized returns e with its endpoints ordered A < B.
func (e Edge) Normalized() Edge {
	if e.A > e.B {
		return Edge{A: e.B, B: e.A}
	}
	return e
}

// String renders e as "a-b".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.A, e.B)
}

// Hash is the bitmask encoding of an edge selection: bit i is set iff the
// edge at index i of the legal edge table is present.
type Hash uint32

// Valid reports whether h lies in [0, MaxHash].
func (h Hash) Valid() bool {
	return h <= MaxHash
}

// Len returns the number of edges encoded in h.
func (h Hash) Len() int {
	return bits.OnesCount32(uint32(h))
}

// Has reports whether the edge at table index i is set in h.
func (h Hash) Has(i int) bool {
	return i >= 0 && i < EdgeCount && h&(1<<uint(i)) != 0
}

// Edges lists the edges set in h, in table order. Bits above MaxHash are ignored.
func (h Hash) Edges() []Edge {
	out := make([]Edge, 0, h.Len())
	for i := 0; i < EdgeCount; i++ {
		if h&1 == 1 {
			out = append(out, legalEdges[i])
		}
		h >>= 1
	}
	return out
}

// legalEdges is the canonical edge table. Index = bit position in a Hash.
// Entries are in ascending (A,B) order.
var legalEdges = [...]Edge{
	{1, 2}, {1, 4}, {1, 5}, {1, 6}, {1, 8},
	{2, 3}, {2, 4}, {2, 5}, {2, 6}, {2, 7}, {2, 9},
	{3, 4}, {3, 5}, {3, 6}, {3, 8},
	{4, 5}, {4, 7}, {4, 8}, {4, 9},
	{5, 6}, {5, 7}, {5, 8}, {5, 9},
	{6, 7}, {6, 8}, {6, 9},
	{7, 8},
	{8, 9},
}

// LegalEdges returns a copy of the legal edge table in bit-index order.
func LegalEdges() []Edge {
	out := make([]Edge, EdgeCount)
	copy(out, legalEdges[:])
	return out
}
