// Package blob persists the active session in the durable blob store.
package blob

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"foodtrace/contexts/identity-access/session-service/domain/entities"
	"foodtrace/internal/platform/storage"
	"foodtrace/internal/shared/roles"
)

const sessionKey = "session/current"

type Store struct {
	blobs  storage.BlobStore
	logger *slog.Logger
}

func NewStore(blobs storage.BlobStore, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{blobs: blobs, logger: logger}
}

type sessionRow struct {
	Role          string    `json:"role"`
	Name          string    `json:"name"`
	Email         string    `json:"email,omitempty"`
	BusinessName  string    `json:"businessName,omitempty"`
	WalletAddress string    `json:"walletAddress,omitempty"`
	LoginMethod   string    `json:"loginMethod"`
	LoginTime     time.Time `json:"loginTime"`
	RegisteredAt  time.Time `json:"registeredAt,omitzero"`
}

// Load restores the persisted session. Malformed content is discarded and
// reported as absent.
func (s *Store) Load(ctx context.Context) (entities.Session, bool) {
	raw, err := s.blobs.Get(ctx, sessionKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("session blob unreadable, treating as absent",
				"event", "session_blob_unreadable",
				"module", "identity-access/session-service",
				"layer", "adapter",
				"error", err.Error(),
			)
		}
		return entities.Session{}, false
	}

	var row sessionRow
	if err := json.Unmarshal([]byte(raw), &row); err != nil {
		s.logger.Warn("session blob malformed, discarding",
			"event", "session_blob_malformed",
			"module", "identity-access/session-service",
			"layer", "adapter",
			"error", err.Error(),
		)
		_ = s.blobs.Delete(ctx, sessionKey)
		return entities.Session{}, false
	}

	role, ok := roles.Parse(row.Role)
	if !ok {
		_ = s.blobs.Delete(ctx, sessionKey)
		return entities.Session{}, false
	}

	return entities.Session{
		Role:          role,
		Name:          row.Name,
		Email:         row.Email,
		BusinessName:  row.BusinessName,
		WalletAddress: row.WalletAddress,
		LoginMethod:   row.LoginMethod,
		LoginTime:     row.LoginTime,
		RegisteredAt:  row.RegisteredAt,
	}, true
}

func (s *Store) Save(ctx context.Context, session entities.Session) error {
	payload, err := json.Marshal(sessionRow{
		Role:          session.Role.String(),
		Name:          session.Name,
		Email:         session.Email,
		BusinessName:  session.BusinessName,
		WalletAddress: session.WalletAddress,
		LoginMethod:   session.LoginMethod,
		LoginTime:     session.LoginTime,
		RegisteredAt:  session.RegisteredAt,
	})
	if err != nil {
		return err
	}
	return s.blobs.Set(ctx, sessionKey, string(payload))
}

func (s *Store) Clear(ctx context.Context) error {
	return s.blobs.Delete(ctx, sessionKey)
}
