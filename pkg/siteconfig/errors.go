package siteconfig

import "errors"

var (
	// ErrInvalidConfig is returned when a configuration fails validation.
	ErrInvalidConfig = errors.New("invalid site configuration")

	// ErrDecode is returned when a configuration document cannot be decoded.
	ErrDecode = errors.New("failed to decode site configuration")
)
