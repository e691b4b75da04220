package auth

import "errors"

var (
	// ErrInvalidCredentials covers unknown email, wrong password and
	// unknown/expired reset tokens alike, so responses never reveal
	// which was the case.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSamePassword rejects a new password equal to the current one.
	ErrSamePassword = errors.New("password is the same as the current one")

	// ErrUserNotFound - the user no longer exists.
	ErrUserNotFound = errors.New("user not found")

	// ErrServer covers unexpected persistence, hashing or mail failures.
	ErrServer = errors.New("server error")
)
