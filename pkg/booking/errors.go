package booking

import "errors"

var (
	ErrInvalidNumber  = errors.New("invalid whatsapp number")
	ErrInvalidService = errors.New("invalid service")
	ErrInvalidName    = errors.New("invalid name")
	ErrInvalidPhone   = errors.New("invalid phone")
	ErrInvalidDate    = errors.New("invalid date")
)
