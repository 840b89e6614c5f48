package contact

import "errors"

var (
	ErrNotFound        = errors.New("unable-to-contact record not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrForbidden       = errors.New("not authorized for this patient")
	ErrNotAuthor       = errors.New("record belongs to another nurse")
)
