package directory

import (
	"log/slog"

	httpadapter "foodtrace/contexts/identity-access/directory-service/adapters/http"
	"foodtrace/contexts/identity-access/directory-service/adapters/memory"
	"foodtrace/contexts/identity-access/directory-service/application"
	"foodtrace/contexts/identity-access/directory-service/ports"
)

// Module is the directory-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Repository ports.Repository
	Clock      ports.Clock
	IDs        ports.IDGenerator
	Publisher  ports.EventPublisher
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:      deps.Repository,
		Clock:     deps.Clock,
		IDs:       deps.IDs,
		Publisher: deps.Publisher,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory
// adapters.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Clock:      store,
		IDs:        store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
