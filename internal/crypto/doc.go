// Package crypto wraps the primitives the registry depends on: Keccak-256
// hashing, secp256k1 recoverable ECDSA in the r||s||v wire layout, and the
// address derivation that ties a public key to a registry identity.
package crypto
