package kernel

import (
	baseHttp "net/http"

	"github.com/thanzeeha/portfolio4/metal/env"
	"github.com/thanzeeha/portfolio4/pkg/auth"
	"github.com/thanzeeha/portfolio4/pkg/portal"
	"github.com/thanzeeha/portfolio4/storage"
)

func (a *App) SetRouter(router Router) {
	a.router = &router
}

func (a *App) CloseLogs() {
	if a.logs == nil {
		return
	}

	driver := a.logs
	driver.Close()
}

func (a *App) IsLocal() bool {
	return a.env.App.IsLocal()
}

func (a *App) IsProduction() bool {
	return a.env.App.IsProduction()
}

func (a *App) GetEnv() *env.Environment {
	return a.env
}

func (a *App) GetStore() *storage.Store {
	return a.store
}

func (a *App) GetGate() *auth.Gate {
	return a.gate
}

func (a *App) GetSentry() *portal.Sentry {
	return a.sentry
}

func (a *App) GetMux() *baseHttp.ServeMux {
	if a.router == nil {
		return nil
	}

	return a.router.Mux
}
