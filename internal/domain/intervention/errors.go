package intervention

import "errors"

var (
	ErrNotFound        = errors.New("intervention not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrForbidden       = errors.New("not authorized for this patient")
)
