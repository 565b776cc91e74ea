// Package authorization decides what a role may see and do.
//
// The policy is a fixed capability table plus an ownership rule for item
// visibility. Decisions are pure functions over the role and wallet of the
// caller; the service holds no state and performs no I/O.
package authorization
