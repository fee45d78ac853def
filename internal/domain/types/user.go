package types

// User is one registered identity record, keyed by its owner address.
//
// MainKey is the credential currently trusted to authorize activations on
// this record; BackupKey is the standby credential a successful activation
// promotes in its place. Partner is the null identity until the owner binds
// a recovery partner.
type User struct {
	MainKey   Address `json:"main_key"`
	BackupKey Address `json:"backup_key"`
	Active    bool    `json:"active"`
	Partner   Address `json:"partner"`
}

// Bound reports whether the record has a recovery partner.
func (u User) Bound() bool { return !u.Partner.IsZero() }
