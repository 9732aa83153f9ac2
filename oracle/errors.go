package oracle

import "github.com/pkg/errors"

var (
	// ErrBadConfig indicates an invalid Config.
	ErrBadConfig = errors.New("oracle: bad config")
	// ErrMalformedRow indicates a CSV row that is not "edges,hash".
	ErrMalformedRow = errors.New("oracle: malformed row")
	// ErrMismatch indicates an oracle file that disagrees with the codec.
	ErrMismatch = errors.New("oracle: file disagrees with codec")
)
