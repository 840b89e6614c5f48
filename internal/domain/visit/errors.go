package visit

import "errors"

var (
	ErrNotFound        = errors.New("visit not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrForbidden       = errors.New("not authorized for this patient")
	ErrNotAuthor       = errors.New("visit belongs to another nurse")
)
