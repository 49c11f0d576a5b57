package qrcode

import "errors"

var (
	// ErrEmptyContent is returned when the content is empty or only whitespace.
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrGenerate is returned when the QR code cannot be encoded.
	ErrGenerate = errors.New("failed to generate QR code")
)
