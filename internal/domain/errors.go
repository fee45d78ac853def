package domain

import "errors"

// Registry failure taxonomy. Every operation fails with exactly one of these,
// deterministically for a given state and input, and leaves no partial state.
var (
	// ErrAlreadyExists is returned when registering an address that already
	// has an active record.
	ErrAlreadyExists = errors.New("identity already registered")

	// ErrNotFound is returned when an operation references an address with
	// no active record.
	ErrNotFound = errors.New("identity not registered")

	// ErrInvalidMainKey is returned when a main key is the null identity.
	ErrInvalidMainKey = errors.New("main key is invalid")

	// ErrInvalidBackupKey is returned when a backup key is the null identity
	// or equals the main key.
	ErrInvalidBackupKey = errors.New("backup key is invalid")

	// ErrSelfBinding is returned when an identity tries to bind itself as
	// its own recovery partner.
	ErrSelfBinding = errors.New("cannot bind self as recovery partner")

	// ErrAlreadyBound is returned when either side of a bind attempt already
	// has a recovery partner. Binding is one-shot.
	ErrAlreadyBound = errors.New("recovery partner already bound")

	// ErrPartnerNotBound is returned when the caller and the target are not
	// mutually bound recovery partners.
	ErrPartnerNotBound = errors.New("caller is not the bound recovery partner")

	// ErrInvalidSignature is returned when a well-formed signature does not
	// recover to the target's current main key.
	ErrInvalidSignature = errors.New("signature does not match current main key")

	// ErrMalformedSignature is returned when a signature is not a decodable
	// 65-byte recoverable signature.
	ErrMalformedSignature = errors.New("malformed signature")
)
