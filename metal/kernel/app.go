package kernel

import (
	"fmt"
	baseHttp "net/http"
	"time"

	"github.com/thanzeeha/portfolio4/metal/env"
	"github.com/thanzeeha/portfolio4/pkg/auth"
	"github.com/thanzeeha/portfolio4/pkg/llogs"
	"github.com/thanzeeha/portfolio4/pkg/middleware"
	"github.com/thanzeeha/portfolio4/pkg/portal"
	"github.com/thanzeeha/portfolio4/storage"
)

type App struct {
	router    *Router
	sentry    *portal.Sentry
	logs      llogs.Driver
	validator *portal.Validator
	env       *env.Environment
	store     *storage.Store
	gate      *auth.Gate
}

func MakeApp(env *env.Environment, validator *portal.Validator) (*App, error) {
	jwtHandler, err := auth.MakeJWTHandler([]byte(env.App.MasterKey), time.Hour)

	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not create a jwt handler: %w", err)
	}

	gate := auth.MakeGate(MakeVerifier(env.Admin), jwtHandler)
	store := MakeContentStore(env)

	app := App{
		env:       env,
		validator: validator,
		logs:      MakeLogs(env),
		sentry:    MakeSentry(env),
		store:     store,
		gate:      gate,
	}

	router := Router{
		Env:    env,
		Store:  store,
		Remote: MakeRemoteStore(env),
		Mux:    baseHttp.NewServeMux(),
		Pipeline: middleware.Pipeline{
			Env:              env,
			Gate:             gate,
			PublicMiddleware: middleware.MakePublicMiddleware(),
		},
	}

	app.SetRouter(router)

	return &app, nil
}

func (a *App) Boot() {
	if a == nil || a.router == nil {
		panic("bootstrapping error > Invalid setup")
	}

	router := *a.router

	router.Profile()
	router.Auth()
	router.Admin()
	router.Content()
	router.KeepAlive()
	router.Metrics()
}
