package bridge

import "errors"

var ErrNoLimiter = errors.New("bridge requires a rate limiter")
