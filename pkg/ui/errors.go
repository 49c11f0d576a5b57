package ui

import "errors"

var (
	// ErrMissingRole is returned when a required element is not in the document.
	ErrMissingRole = errors.New("required element is missing")

	// ErrNilDocument is returned by New without a document or window.
	ErrNilDocument = errors.New("document and window are required")

	// ErrClosed is returned by Init after Close.
	ErrClosed = errors.New("site is closed")

	// ErrFeaturePanic wraps a panic recovered from a feature.
	ErrFeaturePanic = errors.New("feature panicked")
)
