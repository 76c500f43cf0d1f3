package stub

import "errors"

// Sentinel kinds for transport errors.
var (
	ErrNilService = errors.New("service must not be nil")
)
