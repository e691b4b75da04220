package documents

import "errors"

var (
	// ErrServer covers unexpected persistence failures.
	ErrServer = errors.New("server error")
)
