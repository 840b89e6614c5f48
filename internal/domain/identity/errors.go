package identity

import "errors"

var (
	ErrNotFound           = errors.New("nurse not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("admin access required")
	ErrSelfDemotion       = errors.New("cannot demote yourself")
	ErrEmptyUpdate        = errors.New("no data to update")
)
