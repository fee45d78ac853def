// Package store provides the in-memory user store and event log, and the
// passphrase-encrypted keystore for local signing keys.
//
// The in-memory store is the reference implementation of the storage
// contracts; the sqlite subpackage provides the durable one. The keystore
// serialises keys as JSON sealed with a scrypt-derived ChaCha20-Poly1305
// envelope on disk.
package store
