package registryhttp

import "keywarden/internal/domain"

// registerRequest is the body of POST /v1/register.
type registerRequest struct {
	Caller    domain.Address `json:"caller"`
	MainKey   domain.Address `json:"main_key"`
	BackupKey domain.Address `json:"backup_key"`
}

// bindRequest is the body of POST /v1/bind.
type bindRequest struct {
	Caller  domain.Address `json:"caller"`
	Partner domain.Address `json:"partner"`
}

// backupKeyRequest is the body of POST /v1/backup-key.
type backupKeyRequest struct {
	Caller    domain.Address `json:"caller"`
	BackupKey domain.Address `json:"backup_key"`
}

// activateRequest is the body of POST /v1/activate. Signature is the 65-byte
// r||s||v recoverable signature, base64 in JSON.
type activateRequest struct {
	Caller    domain.Address `json:"caller"`
	Target    domain.Address `json:"target"`
	Signature []byte         `json:"signature"`
}

// userResponse is the body of GET /v1/users/{address}.
type userResponse struct {
	User domain.User `json:"user"`
}

// digestResponse is the body of GET /v1/digest/{address}. Digest is the
// 32-byte activation digest before personal-message wrapping.
type digestResponse struct {
	Digest    []byte           `json:"digest"`
	ContextID domain.ContextID `json:"context_id"`
}

// eventsResponse is the body of GET /v1/events.
type eventsResponse struct {
	Events []domain.Event `json:"events"`
}

// errorResponse is the body of any non-2xx response.
type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}
