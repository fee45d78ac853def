package types

// SecpPrivateKey is a raw secp256k1 private scalar.
type SecpPrivateKey [32]byte

// Slice returns the key as a []byte.
func (k SecpPrivateKey) Slice() []byte { return k[:] }

// SignatureLength is the byte length of a recoverable ECDSA signature in
// r||s||v layout.
const SignatureLength = 65
