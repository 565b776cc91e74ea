package ledgerservice

import (
	"log/slog"
	"time"

	httpadapter "foodtrace/contexts/traceability/ledger-service/adapters/http"
	"foodtrace/contexts/traceability/ledger-service/adapters/memory"
	"foodtrace/contexts/traceability/ledger-service/application"
	"foodtrace/contexts/traceability/ledger-service/application/workers"
	"foodtrace/contexts/traceability/ledger-service/ports"
	"foodtrace/internal/platform/messaging"
)

// Module is the ledger-service composition root exposed to runtime wiring.
type Module struct {
	Handler  httpadapter.Handler
	Service  application.Service
	Snapshot *application.SnapshotStore
	Worker   workers.RefreshWorker
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Ledger            ports.LedgerConnector
	Identities        ports.IdentityResolver
	Clock             ports.Clock
	ExpectedNetworkID uint64
	LedgerAddress     string
	FetchTimeout      time.Duration
	RefreshInterval   time.Duration
	Registry          <-chan messaging.Event
	Logger            *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Ledger:            deps.Ledger,
		Identities:        deps.Identities,
		Clock:             deps.Clock,
		ExpectedNetworkID: deps.ExpectedNetworkID,
		LedgerAddress:     deps.LedgerAddress,
		FetchTimeout:      deps.FetchTimeout,
		Logger:            deps.Logger,
	}
	snapshot := application.NewSnapshotStore()

	return Module{
		Handler: httpadapter.Handler{
			Service:  service,
			Snapshot: snapshot,
			Logger:   deps.Logger,
		},
		Service:  service,
		Snapshot: snapshot,
		Worker: workers.RefreshWorker{
			Service:  service,
			Snapshot: snapshot,
			Interval: deps.RefreshInterval,
			Registry: deps.Registry,
			Logger:   deps.Logger,
		},
	}
}

// NewInMemoryModule builds a development/testing module backed by the fake
// connector.
func NewInMemoryModule(chainID uint64, identities ports.IdentityResolver, logger *slog.Logger) (Module, *memory.Ledger) {
	ledger := memory.NewLedger(chainID)
	module := NewModule(Dependencies{
		Ledger:            ledger,
		Identities:        identities,
		Clock:             ports.SystemClock{},
		ExpectedNetworkID: chainID,
		LedgerAddress:     "0x0000000000000000000000000000000000000001",
		FetchTimeout:      2 * time.Second,
		RefreshInterval:   time.Minute,
		Logger:            logger,
	})
	return module, ledger
}
