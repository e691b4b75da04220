package patients

import "errors"

var (
	// ErrUserAlreadyExists - the email is already taken.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrPatientNotFound - no patient with the given id.
	ErrPatientNotFound = errors.New("patient not found")

	// ErrServer covers unexpected persistence failures.
	ErrServer = errors.New("server error")
)
