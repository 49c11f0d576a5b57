package web

import "errors"

var (
	ErrNoAssets  = errors.New("web assets are required")
	ErrNoMetrics = errors.New("metrics are required")
)
