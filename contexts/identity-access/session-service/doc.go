// Package session implements authenticated operator lifecycle for the
// identity-access context: wallet-directory login, demo credential login,
// logout, and persisted-session restore.
//
// Layering follows the other identity-access services. Exactly one session
// is active at a time; repeated logins replace it, logout is idempotent, and
// a corrupt persisted session is discarded silently on restore.
package session
