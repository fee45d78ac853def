package interfaces

import (
	"context"

	domaintypes "keywarden/internal/domain/types"
)

// Registry exposes the identity registry and the activation protocol. The
// self argument is the authenticated invoker of the call; authenticating it
// is the transport's job, not the registry's.
type Registry interface {
	// Register creates the record for self. Fails with ErrAlreadyExists if
	// self already holds an active record, ErrInvalidMainKey or
	// ErrInvalidBackupKey on null or colliding credentials.
	Register(ctx context.Context, self, mainKey, backupKey domaintypes.Address) error

	// BindPartner mutually links self and partner. Binding is one-shot and
	// symmetric: both records point at each other afterwards, atomically.
	BindPartner(ctx context.Context, self, partner domaintypes.Address) error

	// UpdateBackupKey replaces self's standby credential.
	UpdateBackupKey(ctx context.Context, self, newBackupKey domaintypes.Address) error

	// GetDetails returns the record for addr, or the zero record when none
	// exists. It has no side effects.
	GetDetails(ctx context.Context, addr domaintypes.Address) (domaintypes.User, error)

	// Activate swaps target's main and backup keys. self must be target's
	// mutually bound partner and sig must recover, over the activation
	// signing hash for target, to target's current main key.
	Activate(ctx context.Context, self, target domaintypes.Address, sig []byte) error
}
