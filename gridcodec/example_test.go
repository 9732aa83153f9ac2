// File: gridcodec/example_test.go
package gridcodec_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ninegrid/gridcodec"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Encode / Decode
////////////////////////////////////////////////////////////////////////////////

// ExampleCodec_Encode encodes the top-left corner "L" shape:
//
//	1─2 3
//	│
//	4 5 6
//	7 8 9
//
// (1,2) is bit 0 and (1,4) is bit 1, so the hash is 0b11 = 3.
// Endpoint order does not matter: (4,1) is the same edge as (1,4).
func ExampleCodec_Encode() {
	c := gridcodec.New()
	h, err := c.Encode([]gridcodec.Edge{gridcodec.NewEdge(1, 2), {A: 4, B: 1}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("hash:", h)

	_, err = c.EncodePairs([][2]int{{1, 3}})
	fmt.Println("illegal:", errors.Is(err, gridcodec.ErrInvalidEdge))

	// Output:
	// hash: 3
	// illegal: true
}

// ExampleCodec_Decode lists the edges of a hash in table order.
func ExampleCodec_Decode() {
	c := gridcodec.New()
	edges, _ := c.Decode(1<<27 | 1<<7 | 1)
	fmt.Println(edges)

	_, err := c.Decode(gridcodec.MaxHash + 1)
	fmt.Println("out of range:", errors.Is(err, gridcodec.ErrOutOfRange))

	// Output:
	// [1-2 2-5 8-9]
	// out of range: true
}

////////////////////////////////////////////////////////////////////////////////
// Example: HammingDistance
////////////////////////////////////////////////////////////////////////////////

// ExampleCodec_HammingDistance compares two drawings that share one edge.
func ExampleCodec_HammingDistance() {
	c := gridcodec.New()
	left := []gridcodec.Edge{gridcodec.NewEdge(1, 5), gridcodec.NewEdge(5, 9)}
	right := []gridcodec.Edge{gridcodec.NewEdge(5, 9), gridcodec.NewEdge(3, 5)}
	d, _ := c.HammingDistance(left, right)
	fmt.Println("distance:", d)

	// Output:
	// distance: 2
}
