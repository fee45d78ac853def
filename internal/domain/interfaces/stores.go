package interfaces

import (
	"context"

	domaintypes "keywarden/internal/domain/types"
)

// UserStore persists registry user records. Each call is atomic: a returned
// error implies no visible state change.
type UserStore interface {
	// GetUser returns the record for addr. ok is false when no record exists.
	GetUser(ctx context.Context, addr domaintypes.Address) (user domaintypes.User, ok bool, err error)

	// PutUser writes the record for addr, replacing any existing record.
	PutUser(ctx context.Context, addr domaintypes.Address, user domaintypes.User) error

	// PutUserPair writes two records in one transaction so that both writes
	// are visible together or neither is. Mutual partner binding depends on
	// this to keep the symmetry invariant unrepresentable as a torn state.
	PutUserPair(
		ctx context.Context,
		addrA domaintypes.Address, userA domaintypes.User,
		addrB domaintypes.Address, userB domaintypes.User,
	) error
}

// EventLog is the append-only audit trail. The registry appends and never
// reads; Events exists for external monitoring and the CLI.
type EventLog interface {
	// Append assigns the next sequence number to event and stores it.
	Append(ctx context.Context, event domaintypes.Event) error

	// Events returns up to limit events in append order. limit <= 0 means
	// all events.
	Events(ctx context.Context, limit int) ([]domaintypes.Event, error)
}

// KeyStore holds the local signer's secp256k1 private keys, encrypted at
// rest with a passphrase.
type KeyStore interface {
	// SaveKey stores priv under its derived address.
	SaveKey(passphrase string, priv domaintypes.SecpPrivateKey) error

	// LoadKey returns the private key whose derived address is addr.
	LoadKey(passphrase string, addr domaintypes.Address) (domaintypes.SecpPrivateKey, bool, error)

	// Addresses lists the addresses of all stored keys.
	Addresses(passphrase string) ([]domaintypes.Address, error)
}
