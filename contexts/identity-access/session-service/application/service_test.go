package application

import (
	"context"
	"errors"
	"testing"
	"time"

	sessionblob "foodtrace/contexts/identity-access/session-service/adapters/blob"
	"foodtrace/contexts/identity-access/session-service/adapters/memory"
	"foodtrace/contexts/identity-access/session-service/domain/entities"
	domainerrors "foodtrace/contexts/identity-access/session-service/domain/errors"
	"foodtrace/contexts/identity-access/session-service/ports"
	"foodtrace/internal/platform/storage/memorystore"
	"foodtrace/internal/shared/roles"
)

const registeredAddr = "0x00000000000000000000000000000000000000a1"

type fakeDirectory struct {
	records map[string]ports.RegisteredParticipant
	err     error
}

func (d fakeDirectory) Lookup(_ context.Context, address string) (ports.RegisteredParticipant, bool, error) {
	if d.err != nil {
		return ports.RegisteredParticipant{}, false, d.err
	}
	record, ok := d.records[address]
	return record, ok, nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func newTestService(directory ports.ParticipantDirectory, store ports.SessionStore) Service {
	return Service{
		Directory:   directory,
		Sessions:    store,
		Credentials: DemoCredentials(),
		Clock:       fixedClock{now: time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)},
		Active:      NewActiveSession(),
	}
}

func registeredDirectory() fakeDirectory {
	return fakeDirectory{records: map[string]ports.RegisteredParticipant{
		registeredAddr: {
			WalletAddress: registeredAddr,
			Role:          roles.Farmer,
			Name:          "John Smith",
			Email:         "john@farm.com",
		},
	}}
}

func TestLoginByWalletRequiresRegistration(t *testing.T) {
	service := newTestService(registeredDirectory(), memory.NewSessionStore())

	_, err := service.LoginByWallet(context.Background(), "0x00000000000000000000000000000000000000ff")
	if !errors.Is(err, domainerrors.ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered for unknown wallet, got %v", err)
	}
	if _, err := service.Current(); !errors.Is(err, domainerrors.ErrNoActiveSession) {
		t.Fatalf("failed login must leave the service anonymous, got %v", err)
	}
}

func TestLoginByWalletEstablishesSession(t *testing.T) {
	service := newTestService(registeredDirectory(), memory.NewSessionStore())

	session, err := service.LoginByWallet(context.Background(), "0x00000000000000000000000000000000000000A1")
	if err != nil {
		t.Fatalf("wallet login failed: %v", err)
	}
	if session.Role != roles.Farmer || session.Name != "John Smith" {
		t.Fatalf("unexpected session: %+v", session)
	}
	if session.LoginMethod != entities.MethodWallet {
		t.Fatalf("expected wallet login method, got %q", session.LoginMethod)
	}

	current, err := service.Current()
	if err != nil {
		t.Fatalf("expected active session, got %v", err)
	}
	if current.WalletAddress != registeredAddr {
		t.Fatalf("wallet address must normalize to lowercase, got %q", current.WalletAddress)
	}
}

func TestLoginByCredentialMatchesDemoSet(t *testing.T) {
	service := newTestService(registeredDirectory(), memory.NewSessionStore())

	session, err := service.LoginByCredential(context.Background(), "Processor1@Processing.com", "processor123")
	if err != nil {
		t.Fatalf("credential login failed: %v", err)
	}
	if session.Role != roles.Processor || session.Name != "Sarah Johnson" {
		t.Fatalf("unexpected session: %+v", session)
	}
	if session.BusinessName != "Sarah Johnson's Processor Business" {
		t.Fatalf("unexpected business name %q", session.BusinessName)
	}
	if session.LoginMethod != entities.MethodCredential {
		t.Fatalf("expected credential login method, got %q", session.LoginMethod)
	}
}

func TestLoginByCredentialPasswordIsCaseSensitive(t *testing.T) {
	service := newTestService(registeredDirectory(), memory.NewSessionStore())

	if _, err := service.LoginByCredential(context.Background(), "farmer1@farm.com", "FARMER123"); !errors.Is(err, domainerrors.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential for wrong-case password, got %v", err)
	}
	if _, err := service.LoginByCredential(context.Background(), "nobody@farm.com", "farmer123"); !errors.Is(err, domainerrors.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential for unknown email, got %v", err)
	}
}

func TestRepeatedLoginReplacesSession(t *testing.T) {
	service := newTestService(registeredDirectory(), memory.NewSessionStore())
	ctx := context.Background()

	if _, err := service.LoginByCredential(ctx, "farmer1@farm.com", "farmer123"); err != nil {
		t.Fatalf("first login failed: %v", err)
	}
	if _, err := service.LoginByWallet(ctx, registeredAddr); err != nil {
		t.Fatalf("second login failed: %v", err)
	}

	current, err := service.Current()
	if err != nil {
		t.Fatalf("expected active session, got %v", err)
	}
	if current.LoginMethod != entities.MethodWallet {
		t.Fatalf("later login must replace the earlier one, got method %q", current.LoginMethod)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	store := memory.NewSessionStore()
	service := newTestService(registeredDirectory(), store)
	ctx := context.Background()

	if _, err := service.LoginByWallet(ctx, registeredAddr); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if err := service.Logout(ctx); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if err := service.Logout(ctx); err != nil {
		t.Fatalf("repeated logout must succeed, got %v", err)
	}
	if _, err := service.Current(); !errors.Is(err, domainerrors.ErrNoActiveSession) {
		t.Fatalf("expected anonymous state after logout, got %v", err)
	}
	if _, ok := store.Load(ctx); ok {
		t.Fatalf("logout must clear the persisted session")
	}
}

func TestRestoreRecoversPersistedSession(t *testing.T) {
	blobs := memorystore.New()
	store := sessionblob.NewStore(blobs, nil)
	ctx := context.Background()

	first := newTestService(registeredDirectory(), store)
	if _, err := first.LoginByWallet(ctx, registeredAddr); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	second := newTestService(registeredDirectory(), store)
	second.Restore(ctx)
	current, err := second.Current()
	if err != nil {
		t.Fatalf("expected restored session, got %v", err)
	}
	if current.WalletAddress != registeredAddr || current.Role != roles.Farmer {
		t.Fatalf("restored session mismatch: %+v", current)
	}
}

func TestRestoreTreatsCorruptBlobAsAnonymous(t *testing.T) {
	blobs := memorystore.New()
	ctx := context.Background()
	if err := blobs.Set(ctx, "session/current", "garbage{{"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	service := newTestService(registeredDirectory(), sessionblob.NewStore(blobs, nil))
	service.Restore(ctx)

	if _, err := service.Current(); !errors.Is(err, domainerrors.ErrNoActiveSession) {
		t.Fatalf("corrupt persisted session must restore as anonymous, got %v", err)
	}
	// Login still works after the corrupt blob is discarded.
	if _, err := service.LoginByWallet(ctx, registeredAddr); err != nil {
		t.Fatalf("login after corrupt restore failed: %v", err)
	}
}
