package middleware

import (
	"golang.org/x/time/rate"

	"listenote/config"
	"listenote/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rate.Limiter
}

func New(l log.Logger, rl config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.Burst),
	}
}
