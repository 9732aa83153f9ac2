// Package oracle writes and checks CSV test-oracle files for gridcodec.
//
// Each data row pairs an edge selection with its hash:
//
//	edges,hash
//	,0
//	1-2,1
//	1-2 1-4,3
//
// Edges are rendered "a-b", space separated, in table order. Generate
// enumerates every selection of up to Config.MaxSubsetSize edges in
// lexicographic combination order; Verify re-encodes and re-decodes every row
// of an existing file and reports rows that disagree with the codec.
//
// Errors:
//
//   - ErrBadConfig: Config fails validation.
//   - ErrMalformedRow: a row cannot be parsed.
//   - ErrMismatch: Verify found at least one row that disagrees with the codec.
package oracle
