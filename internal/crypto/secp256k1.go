package crypto

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"keywarden/internal/domain"
)

// compactRecoveryBase is the offset decred's compact signature format adds
// to the recovery id.
const compactRecoveryBase = 27

// GenerateKey returns a fresh secp256k1 private key.
func GenerateKey() (domain.SecpPrivateKey, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return domain.SecpPrivateKey{}, err
	}
	var out domain.SecpPrivateKey
	copy(out[:], priv.Serialize())
	return out, nil
}

// KeyAddress derives the registry address of priv's public key.
func KeyAddress(priv domain.SecpPrivateKey) domain.Address {
	key := secp256k1.PrivKeyFromBytes(priv.Slice())
	return PubkeyAddress(key.PubKey())
}

// PubkeyAddress derives the registry address of pub: the trailing 20 bytes
// of the Keccak-256 digest of the uncompressed point without its 0x04 tag.
func PubkeyAddress(pub *secp256k1.PublicKey) domain.Address {
	sum := Keccak256(pub.SerializeUncompressed()[1:])
	var addr domain.Address
	copy(addr[:], sum[HashLength-domain.AddressLength:])
	return addr
}

// Sign produces a recoverable signature over hash in r||s||v layout with
// v in {27, 28}.
func Sign(priv domain.SecpPrivateKey, hash [HashLength]byte) []byte {
	key := secp256k1.PrivKeyFromBytes(priv.Slice())
	compact := ecdsa.SignCompact(key, hash[:], false)

	// decred emits v||r||s; callers expect r||s||v.
	sig := make([]byte, domain.SignatureLength)
	copy(sig, compact[1:])
	sig[domain.SignatureLength-1] = compact[0]
	return sig
}

// RecoverAddress returns the address of the key that produced sig over hash.
// It fails with domain.ErrMalformedSignature when sig is not a decodable
// 65-byte r||s||v signature; v is accepted as 0/1 or 27/28.
func RecoverAddress(hash [HashLength]byte, sig []byte) (domain.Address, error) {
	if len(sig) != domain.SignatureLength {
		return domain.Address{}, domain.ErrMalformedSignature
	}
	v := sig[domain.SignatureLength-1]
	if v < compactRecoveryBase {
		v += compactRecoveryBase
	}

	compact := make([]byte, domain.SignatureLength)
	compact[0] = v
	copy(compact[1:], sig[:domain.SignatureLength-1])

	pub, _, err := ecdsa.RecoverCompact(compact, hash[:])
	if err != nil {
		return domain.Address{}, domain.ErrMalformedSignature
	}
	return PubkeyAddress(pub), nil
}
