package session

import (
	"log/slog"
	"time"

	httpadapter "foodtrace/contexts/identity-access/session-service/adapters/http"
	"foodtrace/contexts/identity-access/session-service/adapters/memory"
	"foodtrace/contexts/identity-access/session-service/application"
	"foodtrace/contexts/identity-access/session-service/ports"
)

// Module is the session-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Active  *application.ActiveSession
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Directory ports.ParticipantDirectory
	Sessions  ports.SessionStore
	Clock     ports.Clock
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	active := application.NewActiveSession()
	service := application.Service{
		Directory:   deps.Directory,
		Sessions:    deps.Sessions,
		Credentials: application.DemoCredentials(),
		Clock:       deps.Clock,
		Active:      active,
		Logger:      deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
		Active:  active,
	}
}

// NewInMemoryModule builds a development/testing module with an in-memory
// session store.
func NewInMemoryModule(directory ports.ParticipantDirectory, logger *slog.Logger) Module {
	return NewModule(Dependencies{
		Directory: directory,
		Sessions:  memory.NewSessionStore(),
		Clock:     systemClock{},
		Logger:    logger,
	})
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }
