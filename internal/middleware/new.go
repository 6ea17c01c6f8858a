package middleware

import (
	"todo-manager/pkg/log"
)

// Config tunes the middleware chain.
type Config struct {
	// RequestsPerMin is the per-client budget for rate limited routes. Zero disables limiting.
	RequestsPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
