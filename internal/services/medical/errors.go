package medical

import "errors"

var (
	// ErrServer covers persistence failures, including a failed pointer
	// update after a successful sub-record upsert.
	ErrServer = errors.New("server error")
)
