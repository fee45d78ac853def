package domain

import (
	interfaces "keywarden/internal/domain/interfaces"
	types "keywarden/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Address        = types.Address
	ContextID      = types.ContextID
	User           = types.User
	Event          = types.Event
	EventKind      = types.EventKind
	SecpPrivateKey = types.SecpPrivateKey
)

// Re-exported constants.
const (
	AddressLength   = types.AddressLength
	SignatureLength = types.SignatureLength

	EventUserRegistered     = types.EventUserRegistered
	EventPartnerBound       = types.EventPartnerBound
	EventBackupKeyUpdated   = types.EventBackupKeyUpdated
	EventBackupKeyActivated = types.EventBackupKeyActivated
)

// ParseAddress decodes a hex address, with or without the 0x prefix.
var ParseAddress = types.ParseAddress

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Registry  = interfaces.Registry
	UserStore = interfaces.UserStore
	EventLog  = interfaces.EventLog
	KeyStore  = interfaces.KeyStore
)
