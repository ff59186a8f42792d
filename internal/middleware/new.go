package middleware

import (
	"smartodo/config"
	"smartodo/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l   log.Logger
	cfg config.APIConfig

	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg config.APIConfig) Middleware {
	return Middleware{
		l:           l,
		cfg:         cfg,
		rateLimiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
