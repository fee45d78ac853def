package store

import (
	"context"
	"sync"

	"keywarden/internal/domain"
)

// MemoryStore keeps user records and events in process memory. Every method
// is atomic under one lock, so a caller never observes a torn write.
type MemoryStore struct {
	mu     sync.RWMutex
	users  map[domain.Address]domain.User
	events []domain.Event
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[domain.Address]domain.User)}
}

// GetUser returns the record for addr.
func (s *MemoryStore) GetUser(ctx context.Context, addr domain.Address) (domain.User, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[addr]
	return user, ok, nil
}

// PutUser writes the record for addr.
func (s *MemoryStore) PutUser(ctx context.Context, addr domain.Address, user domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[addr] = user
	return nil
}

// PutUserPair writes two records under one lock so both are visible together.
func (s *MemoryStore) PutUserPair(
	ctx context.Context,
	addrA domain.Address, userA domain.User,
	addrB domain.Address, userB domain.User,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[addrA] = userA
	s.users[addrB] = userB
	return nil
}

// Append assigns the next sequence number and stores the event.
func (s *MemoryStore) Append(ctx context.Context, event domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	event.Seq = uint64(len(s.events) + 1)
	s.events = append(s.events, event)
	return nil
}

// Events returns up to limit events in append order.
func (s *MemoryStore) Events(ctx context.Context, limit int) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.events)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.Event, n)
	copy(out, s.events[:n])
	return out, nil
}

// Compile-time assertions that MemoryStore implements the storage contracts.
var (
	_ domain.UserStore = (*MemoryStore)(nil)
	_ domain.EventLog  = (*MemoryStore)(nil)
)
