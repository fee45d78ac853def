// Package activation derives the message a partner must sign to authorize a
// backup-key swap.
//
// The digest is domain-separated by a fixed tag, bound to the target address
// and to a deployment-scoped context identifier, then wrapped in the
// personal-message scheme before signing so that a signature produced for an
// activation can never be valid for anything else. Everything here is pure;
// a remote signer can recompute exactly what it must sign without trusting
// the caller's construction of the message.
package activation
