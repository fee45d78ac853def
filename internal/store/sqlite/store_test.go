package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"keywarden/internal/domain"
	"keywarden/internal/store/sqlite"
)

func openStore(t *testing.T, path string) *sqlite.Store {
	t.Helper()
	s, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_PutGetUser(t *testing.T) {
	s := openStore(t, filepath.Join(t.TempDir(), "registry.db"))
	ctx := context.Background()
	addr := domain.Address{1}

	_, ok, err := s.GetUser(ctx, addr)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if ok {
		t.Fatal("found a record in an empty store")
	}

	user := domain.User{
		MainKey:   domain.Address{0xAA},
		BackupKey: domain.Address{0xA2},
		Active:    true,
	}
	if err := s.PutUser(ctx, addr, user); err != nil {
		t.Fatalf("put user: %v", err)
	}
	got, ok, err := s.GetUser(ctx, addr)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if !ok || got != user {
		t.Fatalf("got %+v ok=%v, want %+v", got, ok, user)
	}

	// Upsert replaces the record.
	user.BackupKey = domain.Address{0xA3}
	if err := s.PutUser(ctx, addr, user); err != nil {
		t.Fatalf("put user: %v", err)
	}
	got, _, err = s.GetUser(ctx, addr)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got.BackupKey != user.BackupKey {
		t.Fatalf("upsert did not replace the record: %+v", got)
	}
}

func TestStore_PutUserPair(t *testing.T) {
	s := openStore(t, filepath.Join(t.TempDir(), "registry.db"))
	ctx := context.Background()
	a, b := domain.Address{1}, domain.Address{2}

	userA := domain.User{MainKey: domain.Address{0xAA}, BackupKey: domain.Address{0xA2}, Active: true, Partner: b}
	userB := domain.User{MainKey: domain.Address{0xBB}, BackupKey: domain.Address{0xB2}, Active: true, Partner: a}
	if err := s.PutUserPair(ctx, a, userA, b, userB); err != nil {
		t.Fatalf("put user pair: %v", err)
	}

	gotA, okA, err := s.GetUser(ctx, a)
	if err != nil {
		t.Fatalf("get a: %v", err)
	}
	gotB, okB, err := s.GetUser(ctx, b)
	if err != nil {
		t.Fatalf("get b: %v", err)
	}
	if !okA || !okB || gotA != userA || gotB != userB {
		t.Fatal("pair write not visible on both records")
	}
}

func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.db")
	ctx := context.Background()
	addr := domain.Address{1}
	user := domain.User{MainKey: domain.Address{0xAA}, BackupKey: domain.Address{0xA2}, Active: true}

	s, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := s.PutUser(ctx, addr, user); err != nil {
		t.Fatalf("put user: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	// Reopen applies migrations idempotently and sees the record.
	reopened := openStore(t, path)
	got, ok, err := reopened.GetUser(ctx, addr)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if !ok || got != user {
		t.Fatalf("record lost across reopen: got %+v ok=%v", got, ok)
	}
}

func TestStore_Events(t *testing.T) {
	s := openStore(t, filepath.Join(t.TempDir(), "registry.db"))
	ctx := context.Background()

	first := domain.Event{
		Kind:      domain.EventUserRegistered,
		Subject:   domain.Address{1},
		MainKey:   domain.Address{0xAA},
		BackupKey: domain.Address{0xA2},
		Timestamp: 100,
	}
	second := domain.Event{
		Kind:         domain.EventBackupKeyActivated,
		Subject:      domain.Address{1},
		ActivatedBy:  domain.Address{2},
		OldBackupKey: domain.Address{0xA2},
		Timestamp:    200,
	}
	for _, event := range []domain.Event{first, second} {
		if err := s.Append(ctx, event); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := s.Events(ctx, 0)
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("want 2 events, got %d", len(events))
	}
	if events[0].Seq != 1 || events[1].Seq != 2 {
		t.Fatalf("sequence numbers not assigned in order: %d, %d", events[0].Seq, events[1].Seq)
	}

	first.Seq, second.Seq = 1, 2
	if events[0] != first || events[1] != second {
		t.Fatalf("round trip mismatch:\n got %+v\n     %+v", events[0], events[1])
	}

	limited, err := s.Events(ctx, 1)
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if len(limited) != 1 || limited[0].Seq != 1 {
		t.Fatalf("limit not honored: %+v", limited)
	}
}
