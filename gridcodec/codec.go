package gridcodec

import (
	"fmt"
	"math/bits"
)

// Codec encodes edge selections to Hash values and back.
// It is immutable once built and safe for concurrent use.
type Codec struct {
	// index[a][b] holds table index + 1 for the legal edge (a,b), a < b; 0 means illegal.
	index [VertexCount + 1][VertexCount + 1]uint8
}

// New builds a Codec over the legal edge table.
// Complexity: O(28) time and O(1) memory.
func New() *Codec {
	c := &Codec{}
	for i, e := range legalEdges {
		c.index[e.A][e.B] = uint8(i + 1)
	}

	return c
}

// Len returns the number of legal edges (bits) handled by c.
func (c *Codec) Len() int {
	return EdgeCount
}

// IndexOf returns the table index of e after normalization, and whether e is legal.
// Complexity: O(1).
func (c *Codec) IndexOf(e Edge) (int, bool) {
	e = e.Normalized()
	if !e.A.Valid() || !e.B.Valid() {
		return 0, false
	}
	slot := c.index[e.A][e.B]
	if slot == 0 {
		return 0, false
	}

	return int(slot) - 1, true
}

// IsLegal reports whether the unordered pair {a,b} is a legal edge.
func (c *Codec) IsLegal(a, b int) bool {
	_, ok := c.IndexOf(NewEdge(a, b))
	return ok
}

// Encode returns the Hash of the given edges. Input order and endpoint order
// are irrelevant and duplicates are ignored. An empty selection encodes to 0.
// Returns an error wrapping ErrInvalidEdge, and no partial result, if any pair
// is not legal.
// Complexity: O(n).
func (c *Codec) Encode(edges []Edge) (Hash, error) {
	var h Hash
	for _, e := range edges {
		i, ok := c.IndexOf(e)
		if !ok {
			return 0, fmt.Errorf("%w: (%d,%d)", ErrInvalidEdge, e.A, e.B)
		}
		h |= 1 << uint(i)
	}

	return h, nil
}

// EncodePairs is Encode over raw vertex pairs.
func (c *Codec) EncodePairs(pairs [][2]int) (Hash, error) {
	edges := make([]Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = Edge{A: Vertex(p[0]), B: Vertex(p[1])}
	}

	return c.Encode(edges)
}

// Decode returns the edges encoded by value, in table order.
// Decode(0) returns an empty, non-nil slice.
// Returns an error wrapping ErrOutOfRange if value < 0 or value > MaxHash.
// Complexity: O(28).
func (c *Codec) Decode(value int64) ([]Edge, error) {
	if value < 0 || value > MaxHash {
		return nil, fmt.Errorf("%w: %d not in [0,%d]", ErrOutOfRange, value, MaxHash)
	}

	return Hash(value).Edges(), nil
}

// HammingDistance returns the number of edges present in exactly one of
// left and right. The result lies in [0, EdgeCount].
// Encoding errors are returned unchanged.
func (c *Codec) HammingDistance(left, right []Edge) (int, error) {
	lh, err := c.Encode(left)
	if err != nil {
		return 0, err
	}
	rh, err := c.Encode(right)
	if err != nil {
		return 0, err
	}

	return Distance(lh, rh), nil
}

// Distance returns the Hamming distance between two hashes.
func Distance(a, b Hash) int {
	return bits.OnesCount32(uint32(a ^ b))
}
