package enquiries

import "errors"

var (
	ErrValidation      = errors.New("validation failed")
	ErrEnquiryNotFound = errors.New("enquiry not found")
	ErrInvalidStatus   = errors.New("invalid enquiry status")
)
