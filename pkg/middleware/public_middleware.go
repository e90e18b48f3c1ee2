package middleware

import (
	baseHttp "net/http"
	"time"

	"github.com/thanzeeha/portfolio4/pkg/endpoint"
	"github.com/thanzeeha/portfolio4/pkg/limiter"
	"github.com/thanzeeha/portfolio4/pkg/portal"
)

// PublicMiddleware provides basic protections for public endpoints: a simple
// in-memory failure-based rate limiter keyed by client IP. Handlers report
// failures through the limiter exposed on the request pipeline.
type PublicMiddleware struct {
	rateLimiter *limiter.MemoryLimiter
}

func MakePublicMiddleware() PublicMiddleware {
	return PublicMiddleware{
		rateLimiter: limiter.NewMemoryLimiter(1*time.Minute, 10),
	}
}

func (p PublicMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
		if p.rateLimiter == nil {
			return endpoint.InternalError("public middleware is not configured")
		}

		key := portal.ParseClientIP(r)

		if p.rateLimiter.TooMany(key) {
			return endpoint.TooManyRequests("Too many requests")
		}

		if err := next(w, r); err != nil {
			p.rateLimiter.Fail(key)

			return err
		}

		p.rateLimiter.Forget(key)

		return nil
	}
}

// Limiter exposes the underlying rate limiter so handlers can record
// failures that should count against the caller.
func (p PublicMiddleware) Limiter() *limiter.MemoryLimiter {
	return p.rateLimiter
}
