// Package registryhttp exposes the registry over JSON HTTP and provides the
// matching client.
//
// The caller address travels in the request body; authenticating the
// transport itself (TLS, sessions) is outside the registry's scope. Failure
// taxonomy errors map to stable string codes and HTTP statuses in both
// directions, so a client sees the same sentinel errors a local registry
// returns.
package registryhttp
