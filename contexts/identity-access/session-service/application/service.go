package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"foodtrace/contexts/identity-access/session-service/domain/entities"
	domainerrors "foodtrace/contexts/identity-access/session-service/domain/errors"
	"foodtrace/contexts/identity-access/session-service/ports"
)

// ActiveSession holds the single in-memory session. Anonymous is the state
// with no value; repeated logins replace the value.
type ActiveSession struct {
	mu      sync.RWMutex
	session entities.Session
	ok      bool
}

func NewActiveSession() *ActiveSession {
	return &ActiveSession{}
}

func (a *ActiveSession) Set(session entities.Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = session
	a.ok = true
}

func (a *ActiveSession) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = entities.Session{}
	a.ok = false
}

// Current returns the active session; the boolean is false when anonymous.
func (a *ActiveSession) Current() (entities.Session, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session, a.ok
}

type Service struct {
	Directory   ports.ParticipantDirectory
	Sessions    ports.SessionStore
	Credentials []ports.Credential
	Clock       ports.Clock
	Active      *ActiveSession
	Logger      *slog.Logger
}

// Restore loads a previously persisted session on process start. A missing
// or malformed persisted session leaves the service anonymous; this never
// fails the caller.
func (s Service) Restore(ctx context.Context) {
	if s.Sessions == nil {
		return
	}
	session, ok := s.Sessions.Load(ctx)
	if !ok {
		return
	}
	s.Active.Set(session)
	ResolveLogger(s.Logger).Info("session restored",
		"event", "session_restored",
		"module", "identity-access/session-service",
		"layer", "application",
		"login_method", session.LoginMethod,
		"role", session.Role.String(),
	)
}

// LoginByWallet authenticates a connected wallet against the directory.
func (s Service) LoginByWallet(ctx context.Context, address string) (entities.Session, error) {
	address = strings.ToLower(strings.TrimSpace(address))
	if address == "" {
		return entities.Session{}, domainerrors.ErrInvalidRequest
	}

	record, found, err := s.Directory.Lookup(ctx, address)
	if err != nil {
		return entities.Session{}, err
	}
	if !found {
		return entities.Session{}, domainerrors.ErrNotRegistered
	}

	session := entities.Session{
		Role:          record.Role,
		Name:          record.Name,
		Email:         record.Email,
		BusinessName:  record.BusinessName,
		WalletAddress: record.WalletAddress,
		LoginMethod:   entities.MethodWallet,
		LoginTime:     s.now(),
		RegisteredAt:  record.RegisteredAt,
	}
	return s.establish(ctx, session)
}

// LoginByCredential authenticates against the fixed demo credential set.
func (s Service) LoginByCredential(ctx context.Context, identifier, secret string) (entities.Session, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || secret == "" {
		return entities.Session{}, domainerrors.ErrInvalidRequest
	}

	for _, credential := range s.Credentials {
		if strings.EqualFold(credential.Email, identifier) && credential.Password == secret {
			session := entities.Session{
				Role:         credential.Role,
				Name:         credential.Name,
				Email:        credential.Email,
				BusinessName: fmt.Sprintf("%s's %s Business", credential.Name, credential.Role.Title()),
				LoginMethod:  entities.MethodCredential,
				LoginTime:    s.now(),
			}
			return s.establish(ctx, session)
		}
	}
	return entities.Session{}, domainerrors.ErrInvalidCredential
}

// Logout clears the active session and its persisted copy. Idempotent.
func (s Service) Logout(ctx context.Context) error {
	s.Active.Clear()
	if s.Sessions == nil {
		return nil
	}
	return s.Sessions.Clear(ctx)
}

// Current returns the active session or ErrNoActiveSession.
func (s Service) Current() (entities.Session, error) {
	session, ok := s.Active.Current()
	if !ok {
		return entities.Session{}, domainerrors.ErrNoActiveSession
	}
	return session, nil
}

func (s Service) establish(ctx context.Context, session entities.Session) (entities.Session, error) {
	s.Active.Set(session)
	if s.Sessions != nil {
		if err := s.Sessions.Save(ctx, session); err != nil {
			ResolveLogger(s.Logger).Warn("session persistence failed",
				"event", "session_persist_failed",
				"module", "identity-access/session-service",
				"layer", "application",
				"error", err.Error(),
			)
		}
	}
	ResolveLogger(s.Logger).Info("session established",
		"event", "session_established",
		"module", "identity-access/session-service",
		"layer", "application",
		"login_method", session.LoginMethod,
		"role", session.Role.String(),
	)
	return session, nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
