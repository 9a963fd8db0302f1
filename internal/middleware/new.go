package middleware

import (
	"decidr/pkg/log"
)

// Config groups the tunables of the HTTP middleware chain.
type Config struct {
	AllowedOrigins   []string
	RateLimitEnabled bool
	RateLimitPerMin  int
	RateLimitBurst   int
}

type Middleware struct {
	l       log.Logger
	cfg     Config
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:   l,
		cfg: cfg,
	}
	if cfg.RateLimitEnabled {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin, cfg.RateLimitBurst)
	}
	return mw
}
