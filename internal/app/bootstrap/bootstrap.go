package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	authorization "foodtrace/contexts/identity-access/authorization-service"
	directory "foodtrace/contexts/identity-access/directory-service"
	directoryblob "foodtrace/contexts/identity-access/directory-service/adapters/blob"
	directoryevents "foodtrace/contexts/identity-access/directory-service/adapters/events"
	directorypostgres "foodtrace/contexts/identity-access/directory-service/adapters/postgres"
	directoryapp "foodtrace/contexts/identity-access/directory-service/application"
	directoryerrors "foodtrace/contexts/identity-access/directory-service/domain/errors"
	session "foodtrace/contexts/identity-access/session-service"
	sessionblob "foodtrace/contexts/identity-access/session-service/adapters/blob"
	sessionports "foodtrace/contexts/identity-access/session-service/ports"
	ledgerservice "foodtrace/contexts/traceability/ledger-service"
	"foodtrace/contexts/traceability/ledger-service/adapters/ethereum"
	ledgerworkers "foodtrace/contexts/traceability/ledger-service/application/workers"
	ledgerentities "foodtrace/contexts/traceability/ledger-service/domain/entities"
	ledgerports "foodtrace/contexts/traceability/ledger-service/ports"
	"foodtrace/internal/platform/config"
	"foodtrace/internal/platform/db"
	"foodtrace/internal/platform/httpserver"
	"foodtrace/internal/platform/messaging"
	"foodtrace/internal/platform/storage/bboltstore"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server    *httpserver.Server
	session   session.Module
	worker    ledgerworkers.RefreshWorker
	connector *ethereum.Connector
	store     *bboltstore.Store
	postgres  *db.Postgres
	bus       *messaging.Bus
	logger    *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	// The blob store always opens: even with a postgres directory the
	// session persists through it.
	store, err := bboltstore.Open(cfg.StorePath)
	if err != nil {
		return nil, err
	}

	bus := messaging.NewBus(logger)

	var pg *db.Postgres
	var directoryModule directory.Module
	if strings.TrimSpace(cfg.PostgresDSN) != "" {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			store.Close()
			return nil, err
		}
		repo := directorypostgres.NewRepository(pg.DB, logger)
		if err := repo.Migrate(); err != nil {
			store.Close()
			pg.Close()
			return nil, err
		}
		directoryModule = directory.NewModule(directory.Dependencies{
			Repository: repo,
			Clock:      directorypostgres.SystemClock{},
			IDs:        directorypostgres.UUIDGenerator{},
			Publisher:  directoryevents.Publisher{Bus: bus},
			Logger:     logger,
		})
	} else {
		directoryModule = directory.NewModule(directory.Dependencies{
			Repository: directoryblob.NewStore(store, logger),
			Clock:      directorypostgres.SystemClock{},
			IDs:        directorypostgres.UUIDGenerator{},
			Publisher:  directoryevents.Publisher{Bus: bus},
			Logger:     logger,
		})
	}

	sessionModule := session.NewModule(session.Dependencies{
		Directory: directoryLookup{directory: directoryModule.Service},
		Sessions:  sessionblob.NewStore(store, logger),
		Clock:     directorypostgres.SystemClock{},
		Logger:    logger,
	})

	authzModule := authorization.NewModule(logger)

	connector, err := ethereum.Dial(context.Background(), cfg.LedgerRPCURL, cfg.LedgerAddress)
	if err != nil {
		store.Close()
		if pg != nil {
			pg.Close()
		}
		return nil, err
	}

	traceabilityModule := ledgerservice.NewModule(ledgerservice.Dependencies{
		Ledger:            connector,
		Identities:        directoryResolver{directory: directoryModule.Service},
		Clock:             ledgerports.SystemClock{},
		ExpectedNetworkID: cfg.LedgerNetworkID,
		LedgerAddress:     cfg.LedgerAddress,
		FetchTimeout:      cfg.FetchTimeout,
		RefreshInterval:   cfg.RefreshInterval,
		Registry:          bus.Subscribe(directoryevents.TopicParticipantRegistered),
		Logger:            logger,
	})

	server := httpserver.New(
		directoryModule,
		sessionModule,
		authzModule,
		traceabilityModule,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)

	return &APIApp{
		server:    server,
		session:   sessionModule,
		worker:    traceabilityModule.Worker,
		connector: connector,
		store:     store,
		postgres:  pg,
		bus:       bus,
		logger:    logger,
	}, nil
}

// WorkerApp is the headless refresh process: it polls the ledger on the
// configured interval and logs cycle summaries, without serving HTTP.
type WorkerApp struct {
	worker    ledgerworkers.RefreshWorker
	connector *ethereum.Connector
	store     *bboltstore.Store
	postgres  *db.Postgres
	logger    *slog.Logger
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")

	store, err := bboltstore.Open(cfg.StorePath)
	if err != nil {
		return nil, err
	}

	var pg *db.Postgres
	var directoryModule directory.Module
	if strings.TrimSpace(cfg.PostgresDSN) != "" {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			store.Close()
			return nil, err
		}
		repo := directorypostgres.NewRepository(pg.DB, logger)
		if err := repo.Migrate(); err != nil {
			store.Close()
			pg.Close()
			return nil, err
		}
		directoryModule = directory.NewModule(directory.Dependencies{
			Repository: repo,
			Clock:      directorypostgres.SystemClock{},
			IDs:        directorypostgres.UUIDGenerator{},
			Logger:     logger,
		})
	} else {
		directoryModule = directory.NewModule(directory.Dependencies{
			Repository: directoryblob.NewStore(store, logger),
			Clock:      directorypostgres.SystemClock{},
			IDs:        directorypostgres.UUIDGenerator{},
			Logger:     logger,
		})
	}

	connector, err := ethereum.Dial(context.Background(), cfg.LedgerRPCURL, cfg.LedgerAddress)
	if err != nil {
		store.Close()
		if pg != nil {
			pg.Close()
		}
		return nil, err
	}

	traceabilityModule := ledgerservice.NewModule(ledgerservice.Dependencies{
		Ledger:            connector,
		Identities:        directoryResolver{directory: directoryModule.Service},
		Clock:             ledgerports.SystemClock{},
		ExpectedNetworkID: cfg.LedgerNetworkID,
		LedgerAddress:     cfg.LedgerAddress,
		FetchTimeout:      cfg.FetchTimeout,
		RefreshInterval:   cfg.RefreshInterval,
		Logger:            logger,
	})

	return &WorkerApp{
		worker:    traceabilityModule.Worker,
		connector: connector,
		store:     store,
		postgres:  pg,
		logger:    logger,
	}, nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)
	w.worker.Run(ctx)
	return nil
}

func (w *WorkerApp) Close() error {
	if w.connector != nil {
		w.connector.Close()
	}
	var firstErr error
	if w.store != nil {
		if err := w.store.Close(); err != nil {
			firstErr = err
		}
	}
	if w.postgres != nil {
		if err := w.postgres.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (a *APIApp) Run(ctx context.Context) error {
	a.session.Service.Restore(ctx)
	go a.worker.Run(ctx)

	a.logger.Info("api app started",
		"event", "bootstrap_api_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.connector != nil {
		a.connector.Close()
	}
	if a.bus != nil {
		a.bus.Close()
	}
	var firstErr error
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			firstErr = err
		}
	}
	if a.postgres != nil {
		if err := a.postgres.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// directoryResolver projects directory records into the traceability
// context's identity port. Lookup misses and repository failures both read
// as unresolved; the synthesizer falls back to pseudonyms.
type directoryResolver struct {
	directory directoryapp.Service
}

func (r directoryResolver) Resolve(ctx context.Context, address string) (ledgerentities.Identity, bool) {
	record, err := r.directory.Lookup(ctx, address)
	if err != nil {
		return ledgerentities.Identity{}, false
	}
	return ledgerentities.Identity{
		Name: record.Name,
		Role: record.Role.Title(),
	}, true
}

// directoryLookup projects directory records into the session context's
// participant port.
type directoryLookup struct {
	directory directoryapp.Service
}

func (l directoryLookup) Lookup(ctx context.Context, address string) (sessionports.RegisteredParticipant, bool, error) {
	record, err := l.directory.Lookup(ctx, address)
	if err != nil {
		if errors.Is(err, directoryerrors.ErrParticipantNotFound) {
			return sessionports.RegisteredParticipant{}, false, nil
		}
		return sessionports.RegisteredParticipant{}, false, err
	}
	return sessionports.RegisteredParticipant{
		WalletAddress: record.WalletAddress,
		Role:          record.Role,
		Name:          record.Name,
		Email:         record.Email,
		BusinessName:  record.BusinessName,
		RegisteredAt:  record.RegisteredAt,
	}, true, nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
