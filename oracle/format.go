package oracle

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/ninegrid/gridcodec"
)

var header = []string{"edges", "hash"}

// FormatEdges renders edges as "a-b" tokens separated by single spaces.
func FormatEdges(edges []gridcodec.Edge) string {
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// ParseEdges is the inverse of FormatEdges. The empty string yields no edges.
// Legality is not checked here.
func ParseEdges(s string) ([]gridcodec.Edge, error) {
	fields := strings.Fields(s)
	edges := make([]gridcodec.Edge, 0, len(fields))
	for _, f := range fields {
		as, bs, ok := strings.Cut(f, "-")
		if !ok {
			return nil, errors.Wrapf(ErrMalformedRow, "edge %q", f)
		}
		a, err := strconv.Atoi(as)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedRow, "edge %q: %v", f, err)
		}
		b, err := strconv.Atoi(bs)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedRow, "edge %q: %v", f, err)
		}
		edges = append(edges, gridcodec.Edge{A: gridcodec.Vertex(a), B: gridcodec.Vertex(b)})
	}
	return edges, nil
}

func formatRow(edges []gridcodec.Edge, h gridcodec.Hash) []string {
	return []string{FormatEdges(edges), strconv.FormatUint(uint64(h), 10)}
}
