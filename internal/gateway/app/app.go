package app

import (
	"context"
	"fmt"

	"sonarassist/internal/gateway/config"
	"sonarassist/internal/gateway/handler"
	"sonarassist/internal/gateway/handler/rpc"
	"sonarassist/internal/gateway/repository/connections"
	"sonarassist/internal/gateway/repository/statestore"
	"sonarassist/internal/gateway/server"
	"sonarassist/internal/gateway/service/binding"
	"sonarassist/internal/gateway/service/connection"
	"sonarassist/internal/gateway/service/host"
	"sonarassist/internal/gateway/service/prompt"
	"sonarassist/internal/gateway/service/workspace"
	"sonarassist/internal/suppression"
)

type App struct {
	server     *server.Server
	stateStore *statestore.Store
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Dependencies
	stateStore := statestore.NewFromEnv(cfg.StateStorePath)
	connectionStore := connections.NewStore(cfg.ConnectionsPath)
	suppressions := suppression.NewStore(stateStore)
	hub := host.NewHub()
	prompts := prompt.New(hub, cfg.PromptTimeout)
	folders := workspace.NewRegistry()
	resolver := connection.NewResolver(connectionStore, prompts)
	binder := binding.NewHostBinder(stateStore, hub)
	bindingSvc := binding.NewService(prompts, folders, suppressions, connectionStore, resolver, binder)

	bindingHandler := handler.NewBindingHandler(bindingSvc)
	filesHandler := handler.NewFilesHandler()
	hostHandler := rpc.NewHostHandler(hub, prompts, folders)

	// Routing & Server
	mux := server.NewMux(bindingHandler, filesHandler, hostHandler)
	srv := server.New(cfg.Port, mux)

	return &App{
		server:     srv,
		stateStore: stateStore,
	}, nil
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	_ = a.stateStore.Close()
	return err
}
