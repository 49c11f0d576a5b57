package guard

import "errors"

// ErrLimiterRequired is returned by New without a rate limiter.
var ErrLimiterRequired = errors.New("rate limiter is required")
