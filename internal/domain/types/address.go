package types

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// AddressLength is the byte length of an identity address.
const AddressLength = 20

// Address identifies a user, a credential, or a partner on the registry.
// The zero value is the null identity.
type Address [AddressLength]byte

// Slice returns the address as a []byte.
func (a Address) Slice() []byte { return a[:] }

// IsZero reports whether a is the null identity.
func (a Address) IsZero() bool { return a == Address{} }

// Hex returns the 0x-prefixed lowercase hex form of the address.
func (a Address) Hex() string { return "0x" + hex.EncodeToString(a[:]) }

// String returns the hex form of the address.
func (a Address) String() string { return a.Hex() }

// MarshalText encodes the address as 0x-prefixed hex.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Hex()), nil
}

// UnmarshalText decodes a 0x-prefixed hex address.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAddress decodes a hex address, with or without the 0x prefix.
func ParseAddress(s string) (Address, error) {
	var a Address
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "0x")
	raw, err := hex.DecodeString(trimmed)
	if err != nil {
		return a, fmt.Errorf("parse address %q: %w", s, err)
	}
	if len(raw) != AddressLength {
		return a, fmt.Errorf("parse address %q: want %d bytes, got %d", s, AddressLength, len(raw))
	}
	copy(a[:], raw)
	return a, nil
}

// ContextID scopes activation signatures to one deployment instance. The
// registry treats it as an opaque byte string.
type ContextID string

// Bytes returns the raw bytes of the context identifier.
func (c ContextID) Bytes() []byte { return []byte(c) }

// String returns the string form of the context identifier.
func (c ContextID) String() string { return string(c) }
