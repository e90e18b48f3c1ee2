package middleware

import (
	"github.com/thanzeeha/portfolio4/metal/env"
	"github.com/thanzeeha/portfolio4/pkg/auth"
	"github.com/thanzeeha/portfolio4/pkg/endpoint"
)

type Pipeline struct {
	Env              *env.Environment
	Gate             *auth.Gate
	PublicMiddleware PublicMiddleware
}

func (m Pipeline) Chain(h endpoint.ApiHandler, handlers ...endpoint.Middleware) endpoint.ApiHandler {
	for i := len(handlers) - 1; i >= 0; i-- {
		h = handlers[i](h)
	}

	return h
}
