package registry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"keywarden/internal/domain"
	"keywarden/internal/protocol/activation"
)

// Service owns the user table and gates the backup-key swap.
type Service struct {
	store  domain.UserStore
	events domain.EventLog
	ctxID  domain.ContextID
	clock  func() time.Time

	// mu serializes mutating operations so each executes as one indivisible
	// unit; at most one mutation is in flight at a time.
	mu sync.Mutex
}

// New returns a registry service over the given store and event log. ctxID
// scopes activation signatures to this deployment.
func New(store domain.UserStore, events domain.EventLog, ctxID domain.ContextID) *Service {
	return &Service{
		store:  store,
		events: events,
		ctxID:  ctxID,
		clock:  time.Now,
	}
}

// ContextID returns the deployment context activation signatures are bound to.
func (s *Service) ContextID() domain.ContextID { return s.ctxID }

// Register creates the record for self with the given credentials.
func (s *Service) Register(ctx context.Context, self, mainKey, backupKey domain.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok, err := s.store.GetUser(ctx, self)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if ok && existing.Active {
		return domain.ErrAlreadyExists
	}
	if mainKey.IsZero() {
		return domain.ErrInvalidMainKey
	}
	if backupKey.IsZero() || backupKey == mainKey {
		return domain.ErrInvalidBackupKey
	}

	user := domain.User{
		MainKey:   mainKey,
		BackupKey: backupKey,
		Active:    true,
	}
	if err := s.store.PutUser(ctx, self, user); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return s.append(ctx, domain.Event{
		Kind:      domain.EventUserRegistered,
		Subject:   self,
		MainKey:   mainKey,
		BackupKey: backupKey,
	})
}

// BindPartner mutually links self and partner. Binding is one-shot: once
// either side has a partner, no re-binding or replacement is possible.
func (s *Service) BindPartner(ctx context.Context, self, partner domain.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	selfUser, ok, err := s.store.GetUser(ctx, self)
	if err != nil {
		return fmt.Errorf("bind partner: %w", err)
	}
	if !ok || !selfUser.Active {
		return domain.ErrNotFound
	}
	if partner == self {
		return domain.ErrSelfBinding
	}
	partnerUser, ok, err := s.store.GetUser(ctx, partner)
	if err != nil {
		return fmt.Errorf("bind partner: %w", err)
	}
	if !ok || !partnerUser.Active {
		return domain.ErrNotFound
	}
	if selfUser.Bound() || partnerUser.Bound() {
		return domain.ErrAlreadyBound
	}

	selfUser.Partner = partner
	partnerUser.Partner = self
	if err := s.store.PutUserPair(ctx, self, selfUser, partner, partnerUser); err != nil {
		return fmt.Errorf("bind partner: %w", err)
	}
	return s.append(ctx, domain.Event{
		Kind:    domain.EventPartnerBound,
		Subject: self,
		Partner: partner,
	})
}

// UpdateBackupKey replaces self's standby credential.
func (s *Service) UpdateBackupKey(ctx context.Context, self, newBackupKey domain.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok, err := s.store.GetUser(ctx, self)
	if err != nil {
		return fmt.Errorf("update backup key: %w", err)
	}
	if !ok || !user.Active {
		return domain.ErrNotFound
	}
	if newBackupKey.IsZero() || newBackupKey == user.MainKey {
		return domain.ErrInvalidBackupKey
	}

	user.BackupKey = newBackupKey
	if err := s.store.PutUser(ctx, self, user); err != nil {
		return fmt.Errorf("update backup key: %w", err)
	}
	return s.append(ctx, domain.Event{
		Kind:      domain.EventBackupKeyUpdated,
		Subject:   self,
		BackupKey: newBackupKey,
	})
}

// GetDetails returns the record for addr, or the zero record when none
// exists. It has no side effects and takes no lock.
func (s *Service) GetDetails(ctx context.Context, addr domain.Address) (domain.User, error) {
	user, ok, err := s.store.GetUser(ctx, addr)
	if err != nil {
		return domain.User{}, fmt.Errorf("get details: %w", err)
	}
	if !ok {
		return domain.User{}, nil
	}
	return user, nil
}

// Activate swaps target's main and backup credentials. Two factors gate the
// swap: self must be target's mutually bound partner, and sig must recover
// to target's current main key over the activation signing hash.
func (s *Service) Activate(ctx context.Context, self, target domain.Address, sig []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	targetUser, ok, err := s.store.GetUser(ctx, target)
	if err != nil {
		return fmt.Errorf("activate: %w", err)
	}
	if !ok || !targetUser.Active {
		return domain.ErrNotFound
	}
	selfUser, ok, err := s.store.GetUser(ctx, self)
	if err != nil {
		return fmt.Errorf("activate: %w", err)
	}
	if !ok || !selfUser.Active {
		return domain.ErrNotFound
	}

	// Both directions must agree; a one-sided pointer is not sufficient.
	if targetUser.Partner != self || selfUser.Partner != target {
		return domain.ErrPartnerNotBound
	}

	signer, err := activation.RecoverSigner(target, s.ctxID, sig)
	if err != nil {
		return err
	}
	if signer != targetUser.MainKey {
		return domain.ErrInvalidSignature
	}

	oldBackup := targetUser.BackupKey
	targetUser.MainKey, targetUser.BackupKey = targetUser.BackupKey, targetUser.MainKey
	if err := s.store.PutUser(ctx, target, targetUser); err != nil {
		return fmt.Errorf("activate: %w", err)
	}
	return s.append(ctx, domain.Event{
		Kind:         domain.EventBackupKeyActivated,
		Subject:      target,
		ActivatedBy:  self,
		OldBackupKey: oldBackup,
	})
}

func (s *Service) append(ctx context.Context, event domain.Event) error {
	event.Timestamp = s.clock().Unix()
	if err := s.events.Append(ctx, event); err != nil {
		return fmt.Errorf("append %s event: %w", event.Kind, err)
	}
	return nil
}

// Compile-time assertion that Service implements domain.Registry.
var _ domain.Registry = (*Service)(nil)
