// Package ninegrid maps drawings on the nine-dot grid to compact integers.
//
// The nine dots are numbered row by row:
//
//	1 2 3
//	4 5 6
//	7 8 9
//
// A drawing is a set of straight edges between dots. Only 28 of the 36 dot
// pairs are legal edges; a pair such as (1,3) passes through dot 2 and is
// excluded. Every set of legal edges has exactly one 28-bit hash, and every
// value in [0, 2^28-1] names exactly one set.
//
// Subpackages:
//
//	gridcodec/ — the legal edge table, Encode, Decode and HammingDistance
//	oracle/    — CSV oracle files of edge sets and their hashes, for tests in other languages
//
// Commands:
//
//	cmd/ninegrid-oracle — writes or verifies an oracle file
//
//	go get github.com/katalvlaran/ninegrid/gridcodec
package ninegrid
