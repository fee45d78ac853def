package registryhttp

import (
	"encoding/json"
	"net/http"

	"keywarden/internal/domain"
	"keywarden/internal/protocol/activation"
	"keywarden/internal/services/registry"
)

// Server serves the registry API.
type Server struct {
	reg    *registry.Service
	events domain.EventLog
	mux    *http.ServeMux
}

// NewServer builds a Server around a registry service and its event log.
func NewServer(reg *registry.Service, events domain.EventLog) *Server {
	s := &Server{reg: reg, events: events, mux: http.NewServeMux()}

	s.mux.HandleFunc("POST /v1/register", s.handleRegister)
	s.mux.HandleFunc("POST /v1/bind", s.handleBind)
	s.mux.HandleFunc("POST /v1/backup-key", s.handleBackupKey)
	s.mux.HandleFunc("POST /v1/activate", s.handleActivate)
	s.mux.HandleFunc("GET /v1/users/{address}", s.handleGetUser)
	s.mux.HandleFunc("GET /v1/digest/{address}", s.handleDigest)
	s.mux.HandleFunc("GET /v1/events", s.handleEvents)

	return s
}

// ServeHTTP dispatches to the API mux.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if !decode(w, r, &in) {
		return
	}
	if err := s.reg.Register(r.Context(), in.Caller, in.MainKey, in.BackupKey); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

func (s *Server) handleBind(w http.ResponseWriter, r *http.Request) {
	var in bindRequest
	if !decode(w, r, &in) {
		return
	}
	if err := s.reg.BindPartner(r.Context(), in.Caller, in.Partner); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

func (s *Server) handleBackupKey(w http.ResponseWriter, r *http.Request) {
	var in backupKeyRequest
	if !decode(w, r, &in) {
		return
	}
	if err := s.reg.UpdateBackupKey(r.Context(), in.Caller, in.BackupKey); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

func (s *Server) handleActivate(w http.ResponseWriter, r *http.Request) {
	var in activateRequest
	if !decode(w, r, &in) {
		return
	}
	if err := s.reg.Activate(r.Context(), in.Caller, in.Target, in.Signature); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	addr, ok := pathAddress(w, r)
	if !ok {
		return
	}
	user, err := s.reg.GetDetails(r.Context(), addr)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{User: user})
}

func (s *Server) handleDigest(w http.ResponseWriter, r *http.Request) {
	addr, ok := pathAddress(w, r)
	if !ok {
		return
	}
	digest := activation.Digest(addr, s.reg.ContextID())
	writeJSON(w, http.StatusOK, digestResponse{
		Digest:    digest[:],
		ContextID: s.reg.ContextID(),
	})
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.events.Events(r.Context(), 0)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eventsResponse{Events: events})
}

func pathAddress(w http.ResponseWriter, r *http.Request) (domain.Address, bool) {
	addr, err := domain.ParseAddress(r.PathValue("address"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: codeBadRequest, Error: err.Error()})
		return domain.Address{}, false
	}
	return addr, true
}

func decode(w http.ResponseWriter, r *http.Request, in any) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: codeBadRequest, Error: err.Error()})
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err error) {
	code, status := errorCode(err)
	writeJSON(w, status, errorResponse{Code: code, Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
