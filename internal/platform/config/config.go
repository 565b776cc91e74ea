package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"foodtrace"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`

	// PostgresDSN switches the directory to the postgres repository when set.
	// When empty the directory persists through the blob store instead.
	PostgresDSN string `env:"POSTGRES_DSN"`

	// StorePath locates the bbolt file backing the blob store.
	StorePath string `env:"STORE_PATH" envDefault:"foodtrace.db"`

	LedgerRPCURL    string        `env:"LEDGER_RPC_URL" envDefault:"http://localhost:8545"`
	LedgerAddress   string        `env:"LEDGER_ADDRESS" envDefault:"0xBD200d74B150cF29F77B2bCd80D910a93946BbDC"`
	LedgerNetworkID uint64        `env:"LEDGER_NETWORK_ID" envDefault:"1337"`
	FetchTimeout    time.Duration `env:"FETCH_TIMEOUT" envDefault:"10s"`
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"30s"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment config: %w", err)
	}
	if cfg.LedgerNetworkID == 0 {
		return Config{}, fmt.Errorf("LEDGER_NETWORK_ID must be non-zero")
	}
	return cfg, nil
}
