package kernel

import (
	baseHttp "net/http"

	"github.com/thanzeeha/portfolio4/handler"
	"github.com/thanzeeha/portfolio4/metal/env"
	"github.com/thanzeeha/portfolio4/pkg/endpoint"
	"github.com/thanzeeha/portfolio4/pkg/middleware"
	"github.com/thanzeeha/portfolio4/remote"
	"github.com/thanzeeha/portfolio4/storage"
)

type Router struct {
	Env      *env.Environment
	Mux      *baseHttp.ServeMux
	Pipeline middleware.Pipeline
	Store    *storage.Store
	Remote   *remote.GithubStore
}

// PublicPipelineFor wraps open endpoints with the failure-based rate limiter.
func (r *Router) PublicPipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Chain(
			apiHandler,
			r.Pipeline.PublicMiddleware.Handle,
		),
	)
}

// SessionPipelineFor wraps admin endpoints with bearer session enforcement.
func (r *Router) SessionPipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	sessionMiddleware := middleware.MakeSessionMiddleware(r.Pipeline.Gate)

	return endpoint.NewApiHandler(
		r.Pipeline.Chain(
			apiHandler,
			sessionMiddleware.Handle,
		),
	)
}

func (r *Router) Profile() {
	abstract := handler.MakeProfileHandler(r.Store)

	show := endpoint.NewApiHandler(
		r.Pipeline.Chain(abstract.Handle),
	)

	r.Mux.HandleFunc("GET /profile", show)
}

func (r *Router) Auth() {
	abstract := handler.MakeAuthHandler(r.Pipeline.Gate)

	login := r.PublicPipelineFor(abstract.Login)
	logout := r.SessionPipelineFor(abstract.Logout)

	r.Mux.HandleFunc("POST /auth/login", login)
	r.Mux.HandleFunc("POST /auth/logout", logout)
}

func (r *Router) Admin() {
	coords := remote.Coordinates{
		Owner:  r.Env.Remote.Owner,
		Repo:   r.Env.Remote.Repo,
		Path:   r.Env.Remote.Path,
		Branch: r.Env.Remote.GetBranch(),
	}

	abstract := handler.MakeAdminHandler(r.Store, r.Remote, coords, r.Env.Remote.Message)

	commit := r.SessionPipelineFor(abstract.Commit)
	export := r.SessionPipelineFor(abstract.Export)
	reset := r.SessionPipelineFor(abstract.Reset)

	r.Mux.HandleFunc("POST /admin/commit", commit)
	r.Mux.HandleFunc("GET /admin/export", export)
	r.Mux.HandleFunc("POST /admin/reset", reset)
}

func (r *Router) Content() {
	abstract := handler.MakeContentHandler(&r.Env.Remote, r.Remote)

	ingress := r.PublicPipelineFor(abstract.Handle)

	// the handler owns the method check so callers get an explicit 405
	r.Mux.HandleFunc("/api/update-content", ingress)
}

func (r *Router) KeepAlive() {
	abstract := handler.MakeKeepAliveHandler(&r.Env.Ping)

	apiHandler := endpoint.NewApiHandler(
		r.Pipeline.Chain(abstract.Handle),
	)

	r.Mux.HandleFunc("GET /ping", apiHandler)
}

func (r *Router) Metrics() {
	abstract := handler.NewMetricsHandler()

	r.Mux.Handle("GET /metrics", abstract)
}
