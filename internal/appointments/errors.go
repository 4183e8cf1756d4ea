package appointments

import "errors"

var (
	ErrValidation          = errors.New("validation failed")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidStatus       = errors.New("invalid appointment status")
)
