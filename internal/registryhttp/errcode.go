package registryhttp

import (
	"errors"
	"net/http"

	"keywarden/internal/domain"
)

// Stable wire codes for the registry failure taxonomy.
const (
	codeAlreadyExists      = "ALREADY_EXISTS"
	codeNotFound           = "NOT_FOUND"
	codeInvalidMainKey     = "INVALID_MAIN_KEY"
	codeInvalidBackupKey   = "INVALID_BACKUP_KEY"
	codeSelfBinding        = "SELF_BINDING_NOT_ALLOWED"
	codeAlreadyBound       = "ALREADY_BOUND"
	codePartnerNotBound    = "PARTNER_NOT_BOUND"
	codeInvalidSignature   = "INVALID_SIGNATURE"
	codeMalformedSignature = "MALFORMED_SIGNATURE"
	codeBadRequest         = "BAD_REQUEST"
	codeInternal           = "INTERNAL"
)

type codeMapping struct {
	err    error
	code   string
	status int
}

var codeMappings = []codeMapping{
	{domain.ErrAlreadyExists, codeAlreadyExists, http.StatusConflict},
	{domain.ErrNotFound, codeNotFound, http.StatusNotFound},
	{domain.ErrInvalidMainKey, codeInvalidMainKey, http.StatusBadRequest},
	{domain.ErrInvalidBackupKey, codeInvalidBackupKey, http.StatusBadRequest},
	{domain.ErrSelfBinding, codeSelfBinding, http.StatusBadRequest},
	{domain.ErrAlreadyBound, codeAlreadyBound, http.StatusConflict},
	{domain.ErrPartnerNotBound, codePartnerNotBound, http.StatusForbidden},
	{domain.ErrInvalidSignature, codeInvalidSignature, http.StatusUnauthorized},
	{domain.ErrMalformedSignature, codeMalformedSignature, http.StatusBadRequest},
}

// errorCode maps a registry error to its wire code and HTTP status.
func errorCode(err error) (code string, status int) {
	for _, m := range codeMappings {
		if errors.Is(err, m.err) {
			return m.code, m.status
		}
	}
	return codeInternal, http.StatusInternalServerError
}

// codeError maps a wire code back to its sentinel error, or nil for unknown
// codes.
func codeError(code string) error {
	for _, m := range codeMappings {
		if m.code == code {
			return m.err
		}
	}
	return nil
}
