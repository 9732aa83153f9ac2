// Package gridcodec maps edge sets of the nine-dot grid to and from a compact
// integer form, and measures how far apart two edge sets are.
//
// What:
//
//   - Vertices are numbered 1..9 in row-major order:
//
//     1 2 3
//     4 5 6
//     7 8 9
//
//   - Of the 36 possible vertex pairs only 28 are legal edges. Pairs that pass
//     straight through a third dot, e.g. (1,3) or (1,7), are excluded.
//   - The legal edges form a fixed table; the position of an edge in that table
//     is its bit index in the encoded Hash.
//   - Encode ORs the bits of a selection, Decode lists the set bits in table order,
//     HammingDistance counts the bits that differ.
//
// Why:
//
//   - A whole drawing on the grid fits in a uint32 and compares with one XOR.
//   - Hashes are stable across runs and languages, so they can be stored in test
//     oracles and datasets.
//
// Complexity:
//
//   - Encode:          O(n) for n input edges, Memory: O(1).
//   - Decode:          O(28), Memory: O(28).
//   - HammingDistance: O(n+m), Memory: O(1).
//
// Errors:
//
//   - ErrInvalidEdge: a pair is not one of the 28 legal edges.
//   - ErrOutOfRange: a value to decode is negative or greater than MaxHash.
//
// A Codec is immutable and safe for concurrent use.
package gridcodec
