package carousel

import "errors"

var (
	// ErrNoSlides is returned when a carousel is created without slides.
	ErrNoSlides = errors.New("carousel has no slides")

	// ErrInvalidMode is returned by ParseMode for an unknown presentation.
	ErrInvalidMode = errors.New("invalid carousel mode")
)
