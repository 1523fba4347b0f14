package middleware

import (
	"quick-capture/config"
	"quick-capture/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if cfg.Enabled && cfg.PerMin > 0 {
		mw.limiter = newRateLimiter(cfg.PerMin)
	}
	return mw
}
