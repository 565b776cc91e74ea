package authorization

import (
	"log/slog"

	httpadapter "foodtrace/contexts/identity-access/authorization-service/adapters/http"
	"foodtrace/contexts/identity-access/authorization-service/application"
)

// Module is the authorization-service composition root exposed to runtime
// wiring. The policy is static, so there are no runtime dependencies beyond
// the logger.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
}

func NewModule(logger *slog.Logger) Module {
	service := application.Service{Logger: logger}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: logger},
		Service: service,
	}
}
