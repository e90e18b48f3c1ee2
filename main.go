package main

import (
	"context"
	"log/slog"
	baseHttp "net/http"

	"github.com/thanzeeha/portfolio4/metal/kernel"
	"github.com/thanzeeha/portfolio4/pkg/endpoint"
	"github.com/thanzeeha/portfolio4/pkg/portal"
)

var app *kernel.App

func init() {
	validate := portal.GetDefaultValidator()

	secrets, err := kernel.Ignite("./.env", validate)
	if err != nil {
		panic("Error loading the environment: " + err.Error())
	}

	app, err = kernel.MakeApp(secrets, validate)
	if err != nil {
		panic("Error bootstrapping the application: " + err.Error())
	}
}

func main() {
	defer app.CloseLogs()

	app.Boot()

	environment := app.GetEnv()

	tracer, err := portal.NewTracerProvider(environment)
	if err != nil {
		panic("Error initializing tracing: " + err.Error())
	}

	defer func() {
		if err := tracer.Shutdown(); err != nil {
			slog.Error("Error shutting down tracing", "error", err)
		}
	}()

	backup, err := kernel.MakeBackupScheduler(environment, app.GetStore(), kernel.MakeRemoteStore(environment))
	if err != nil {
		panic("Error preparing the backup job: " + err.Error())
	}

	if backup != nil {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if err := backup.Start(ctx); err != nil {
			panic("Error starting the backup job: " + err.Error())
		}

		defer backup.Stop()
	}

	handler := endpoint.NewServerHandler(endpoint.ServerHandlerConfig{
		Mux:          app.GetMux(),
		IsProduction: app.IsProduction(),
		DevHost:      environment.App.URL,
		Wrap: func(next baseHttp.Handler) baseHttp.Handler {
			return app.GetSentry().Handler.Handle(next)
		},
	})

	addr := environment.Network.GetHostURL()
	server := &baseHttp.Server{
		Addr:    addr,
		Handler: handler,
	}

	if err := endpoint.RunServer(addr, server); err != nil {
		slog.Error("Error running server", "error", err)
		panic("Error running server: " + err.Error())
	}
}
