package types

// EventKind labels one entry of the registry audit log.
type EventKind string

// String returns the string form of the event kind.
func (k EventKind) String() string { return string(k) }

const (
	// EventUserRegistered records a successful Register call.
	EventUserRegistered EventKind = "UserRegistered"
	// EventPartnerBound records a successful BindPartner call.
	EventPartnerBound EventKind = "PartnerBound"
	// EventBackupKeyUpdated records a successful UpdateBackupKey call.
	EventBackupKeyUpdated EventKind = "BackupKeyUpdated"
	// EventBackupKeyActivated records a successful Activate call.
	EventBackupKeyActivated EventKind = "BackupKeyActivated"
)

// Event is one append-only audit record. The registry writes events and
// never reads them back; Seq is assigned by the event log on append.
type Event struct {
	Seq     uint64    `json:"seq"`
	Kind    EventKind `json:"kind"`
	Subject Address   `json:"subject"`

	// MainKey and BackupKey are set for UserRegistered; BackupKey alone for
	// BackupKeyUpdated; OldBackupKey and ActivatedBy for BackupKeyActivated;
	// Partner for PartnerBound.
	MainKey      Address `json:"main_key,omitzero"`
	BackupKey    Address `json:"backup_key,omitzero"`
	Partner      Address `json:"partner,omitzero"`
	ActivatedBy  Address `json:"activated_by,omitzero"`
	OldBackupKey Address `json:"old_backup_key,omitzero"`

	Timestamp int64 `json:"timestamp"`
}
