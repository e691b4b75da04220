package doctors

import "errors"

var (
	// ErrUserAlreadyExists - the email or license number is already taken.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrDoctorNotFound - no doctor with the given id.
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrServer covers unexpected persistence failures.
	ErrServer = errors.New("server error")
)
