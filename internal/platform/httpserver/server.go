package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	authorization "foodtrace/contexts/identity-access/authorization-service"
	directory "foodtrace/contexts/identity-access/directory-service"
	session "foodtrace/contexts/identity-access/session-service"
	ledgerservice "foodtrace/contexts/traceability/ledger-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "foodtrace/internal/platform/httpserver/docs"
)

type Server struct {
	mux           *http.ServeMux
	logger        *slog.Logger
	addr          string
	directory     directory.Module
	session       session.Module
	authorization authorization.Module
	traceability  ledgerservice.Module
}

func New(
	directoryModule directory.Module,
	sessionModule session.Module,
	authorizationModule authorization.Module,
	traceabilityModule ledgerservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:           http.NewServeMux(),
		logger:        logger,
		addr:          addr,
		directory:     directoryModule,
		session:       sessionModule,
		authorization: authorizationModule,
		traceability:  traceabilityModule,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/directory/v1/participants", s.handleRegisterParticipant)
	s.mux.HandleFunc("POST /api/directory/v1/participants/bulk", s.handleBulkRegisterParticipants)
	s.mux.HandleFunc("POST /api/directory/v1/participants/sample", s.handleLoadSampleParticipants)
	s.mux.HandleFunc("GET /api/directory/v1/participants", s.handleListParticipants)
	s.mux.HandleFunc("GET /api/directory/v1/participants/{address}", s.handleGetParticipant)

	s.mux.HandleFunc("POST /api/session/v1/login/wallet", s.handleWalletLogin)
	s.mux.HandleFunc("POST /api/session/v1/login/credentials", s.handleCredentialLogin)
	s.mux.HandleFunc("POST /api/session/v1/logout", s.handleLogout)
	s.mux.HandleFunc("GET /api/session/v1/current", s.handleCurrentSession)

	s.mux.HandleFunc("POST /api/authz/v1/check", s.handleAuthzCheck)

	s.mux.HandleFunc("GET /api/items/v1/items", s.handleListItems)
	s.mux.HandleFunc("GET /api/items/v1/items/{sku}", s.handleGetItem)
	s.mux.HandleFunc("GET /api/items/v1/available", s.handleAvailableItems)
	s.mux.HandleFunc("GET /api/items/v1/analytics", s.handleAnalytics)
	s.mux.HandleFunc("POST /api/items/v1/refresh", s.handleRefresh)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
