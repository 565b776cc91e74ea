// Package directory implements the off-ledger participant registry for the
// identity-access context. The ledger knows wallets, not people; this module
// owns the mapping from wallet address to human-readable participant profile.
//
// Layering:
// - domain: participant entity, invariants, errors
// - application: registration/lookup use-cases using explicit ports
// - ports: stable boundaries for persistence and event publication
// - adapters: concrete memory, blob, postgres, and HTTP implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - At most one live record per wallet address; registration replaces.
// - A corrupt persisted store initializes empty, never fails the caller.
package directory
