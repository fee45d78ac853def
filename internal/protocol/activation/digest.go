package activation

import (
	"keywarden/internal/crypto"
	"keywarden/internal/domain"
)

const (
	// DomainTag prefixes every activation digest preimage.
	DomainTag = "ACTIVATE_BACKUP"

	// personalPrefix is the personal-message prefix for a 32-byte payload.
	// It must match the scheme signers use off-system byte for byte.
	personalPrefix = "\x19Ethereum Signed Message:\n32"
)

// Digest derives the activation digest for target within the deployment
// identified by ctxID: Keccak256(DomainTag || target || ctxID).
func Digest(target domain.Address, ctxID domain.ContextID) [crypto.HashLength]byte {
	return crypto.Keccak256([]byte(DomainTag), target.Slice(), ctxID.Bytes())
}

// SigningHash wraps an activation digest in the personal-message scheme,
// producing the hash the signature is actually verified against.
func SigningHash(digest [crypto.HashLength]byte) [crypto.HashLength]byte {
	return crypto.Keccak256([]byte(personalPrefix), digest[:])
}

// Sign produces a recoverable signature authorizing an activation on target.
// It is the signer-side counterpart of the verification in the registry.
func Sign(priv domain.SecpPrivateKey, target domain.Address, ctxID domain.ContextID) []byte {
	return crypto.Sign(priv, SigningHash(Digest(target, ctxID)))
}

// RecoverSigner returns the address that signed an activation for target
// under ctxID. It fails with domain.ErrMalformedSignature on undecodable
// signatures.
func RecoverSigner(target domain.Address, ctxID domain.ContextID, sig []byte) (domain.Address, error) {
	return crypto.RecoverAddress(SigningHash(Digest(target, ctxID)), sig)
}
