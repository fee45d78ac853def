// Package registry implements the identity registry and the activation
// protocol over a user store and an event log.
//
// Every mutating operation runs as one indivisible unit: a single service
// mutex serializes mutations, and a failed call leaves no partial state.
// Reads take no lock; the store guarantees they never observe torn writes.
package registry
