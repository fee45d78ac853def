package crypto

import "golang.org/x/crypto/sha3"

// HashLength is the byte length of a Keccak-256 digest.
const HashLength = 32

// Keccak256 returns the legacy Keccak-256 digest of the concatenation of
// data. This is the pre-NIST padding variant used by signers off-system, not
// standard SHA3-256.
func Keccak256(data ...[]byte) [HashLength]byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	var sum [HashLength]byte
	h.Sum(sum[:0])
	return sum
}
