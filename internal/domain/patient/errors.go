package patient

import "errors"

var (
	ErrNotFound             = errors.New("patient not found")
	ErrForbidden            = errors.New("not authorized for this patient")
	ErrAdminOnly            = errors.New("admin access required")
	ErrOrganizationRequired = errors.New("organization is required")
)
