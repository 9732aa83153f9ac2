package oracle

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/ninegrid/gridcodec"
)

// Mismatch describes one oracle row that disagrees with the codec.
type Mismatch struct {
	Line   int
	Edges  string
	Hash   string
	Reason string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("line %d (%q,%s): %s", m.Line, m.Edges, m.Hash, m.Reason)
}

// Report summarizes a Verify run.
type Report struct {
	Rows       int
	Mismatches []Mismatch
}

// Verify reads an oracle file from r and checks every row against c:
// the edges must encode to the hash, the hash must decode to the edges in
// table order, and no hash may appear twice.
// Returns an error wrapping ErrMismatch if any row fails, or ErrMalformedRow
// if the file cannot be read as "edges,hash" rows.
func Verify(r io.Reader, c *gridcodec.Codec, cfg Config) (Report, error) {
	var rep Report
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)
	cr.ReuseRecord = true

	seen := hashset.New()
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rep, errors.Wrapf(ErrMalformedRow, "line %d: %v", line+1, err)
		}
		line++
		if line == 1 && cfg.Header {
			if rec[0] != header[0] || rec[1] != header[1] {
				return rep, errors.Wrapf(ErrMalformedRow, "line 1: want header %v, got %v", header, rec)
			}
			continue
		}
		rep.Rows++
		if m, ok := checkRow(c, seen, line, rec[0], rec[1]); !ok {
			klog.V(2).Infof("oracle: %s", m)
			rep.Mismatches = append(rep.Mismatches, m)
		}
	}

	if len(rep.Mismatches) > 0 {
		return rep, errors.Wrapf(ErrMismatch, "%d of %d rows", len(rep.Mismatches), rep.Rows)
	}
	return rep, nil
}

func checkRow(c *gridcodec.Codec, seen *hashset.Set, line int, edgeStr, hashStr string) (Mismatch, bool) {
	m := Mismatch{Line: line, Edges: edgeStr, Hash: hashStr}
	want, err := strconv.ParseInt(hashStr, 10, 64)
	if err != nil {
		m.Reason = "hash is not an integer"
		return m, false
	}
	edges, err := ParseEdges(edgeStr)
	if err != nil {
		m.Reason = err.Error()
		return m, false
	}
	got, err := c.Encode(edges)
	if err != nil {
		m.Reason = err.Error()
		return m, false
	}
	if int64(got) != want {
		m.Reason = fmt.Sprintf("edges encode to %d", got)
		return m, false
	}
	decoded, err := c.Decode(want)
	if err != nil {
		m.Reason = err.Error()
		return m, false
	}
	if canon := FormatEdges(decoded); canon != edgeStr {
		m.Reason = fmt.Sprintf("hash decodes to %q", canon)
		return m, false
	}
	if seen.Contains(got) {
		m.Reason = "duplicate hash"
		return m, false
	}
	seen.Add(got)
	return m, true
}
