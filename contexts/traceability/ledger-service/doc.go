// Package ledgerservice implements the item ledger reader and provenance
// synthesizer for the traceability context.
//
// Layering:
// - domain: tracked item entities, lifecycle invariants, timeline synthesis
// - application: refresh cycle, snapshot cache, analytics, workers
// - ports: stable boundaries for the ledger connector and identity resolution
// - adapters: concrete ethereum, memory, and HTTP implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under the traceability context.
// - Do not import other context adapters into domain/application.
// - The ledger is read-only here; state transitions happen on-chain and are
//   reflected, never enforced.
package ledgerservice
