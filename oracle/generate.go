package oracle

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/ninegrid/gridcodec"
)

// Generate writes one row per selection of 0..cfg.MaxSubsetSize legal edges to w.
// Selections are emitted by size, then in lexicographic order of table indices.
// Returns the number of data rows written.
func Generate(w io.Writer, c *gridcodec.Codec, cfg Config) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	cw := csv.NewWriter(w)
	if cfg.Header {
		if err := cw.Write(header); err != nil {
			return 0, errors.Wrap(err, "writing header")
		}
	}

	all := gridcodec.LegalEdges()
	rows := 0
	for k := 0; k <= cfg.MaxSubsetSize; k++ {
		n, err := writeCombinations(cw, c, all, k)
		rows += n
		if err != nil {
			return rows, err
		}
		klog.V(2).Infof("oracle: wrote %d selections of size %d", n, k)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return rows, errors.Wrap(err, "flushing oracle")
	}
	return rows, nil
}

// writeCombinations writes every k-subset of all, walking index tuples
// idx[0] < idx[1] < ... < idx[k-1] in lexicographic order.
func writeCombinations(cw *csv.Writer, c *gridcodec.Codec, all []gridcodec.Edge, k int) (int, error) {
	n := len(all)
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	picked := make([]gridcodec.Edge, k)
	rows := 0
	for {
		for i, j := range idx {
			picked[i] = all[j]
		}
		h, err := c.Encode(picked)
		if err != nil {
			return rows, errors.Wrapf(err, "encoding %s", FormatEdges(picked))
		}
		if err := cw.Write(formatRow(picked, h)); err != nil {
			return rows, errors.Wrap(err, "writing row")
		}
		rows++

		// advance to the next combination
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return rows, nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
