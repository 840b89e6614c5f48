package admin

import "errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("admin access required")
)
