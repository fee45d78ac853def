// Package sqlite provides a SQLite-backed user store and event log.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"keywarden/internal/domain"
	"keywarden/internal/store/sqlite/migrations"
)

// Store persists registry state in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite store at path and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetUser returns the record for addr.
func (s *Store) GetUser(ctx context.Context, addr domain.Address) (domain.User, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, false, err
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT main_key, backup_key, active, partner
		 FROM users
		 WHERE address = ?`,
		addr.Hex(),
	)
	var (
		mainKey, backupKey, partner string
		active                      int64
	)
	if err := row.Scan(&mainKey, &backupKey, &active, &partner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, fmt.Errorf("get user: %w", err)
	}
	user, err := scanUser(mainKey, backupKey, active, partner)
	if err != nil {
		return domain.User{}, false, fmt.Errorf("get user: %w", err)
	}
	return user, true, nil
}

// PutUser upserts the record for addr.
func (s *Store) PutUser(ctx context.Context, addr domain.Address, user domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx, putUserSQL, putUserArgs(addr, user)...); err != nil {
		return fmt.Errorf("put user: %w", err)
	}
	return nil
}

// PutUserPair upserts two records in one transaction so both writes are
// visible together or neither is.
func (s *Store) PutUserPair(
	ctx context.Context,
	addrA domain.Address, userA domain.User,
	addrB domain.Address, userB domain.User,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("put user pair: %w", err)
	}
	if _, err := tx.ExecContext(ctx, putUserSQL, putUserArgs(addrA, userA)...); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("put user pair: %w", err)
	}
	if _, err := tx.ExecContext(ctx, putUserSQL, putUserArgs(addrB, userB)...); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("put user pair: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("put user pair: %w", err)
	}
	return nil
}

// Append stores one audit event; the sequence number is row-assigned.
func (s *Store) Append(ctx context.Context, event domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO events (kind, subject, main_key, backup_key, partner, activated_by, old_backup_key, at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		event.Kind.String(),
		event.Subject.Hex(),
		hexOrEmpty(event.MainKey),
		hexOrEmpty(event.BackupKey),
		hexOrEmpty(event.Partner),
		hexOrEmpty(event.ActivatedBy),
		hexOrEmpty(event.OldBackupKey),
		event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// Events returns up to limit events in append order.
func (s *Store) Events(ctx context.Context, limit int) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	query := `SELECT seq, kind, subject, main_key, backup_key, partner, activated_by, old_backup_key, at
	 FROM events
	 ORDER BY seq ASC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []domain.Event
	for rows.Next() {
		var event domain.Event
		var kind, subject, mainKey, backupKey, partner, by, oldBackup string
		if err := rows.Scan(&event.Seq, &kind, &subject, &mainKey, &backupKey, &partner, &by, &oldBackup, &event.Timestamp); err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		event.Kind = domain.EventKind(kind)
		if event.Subject, err = domain.ParseAddress(subject); err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		if event.MainKey, err = addressOrZero(mainKey); err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		if event.BackupKey, err = addressOrZero(backupKey); err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		if event.Partner, err = addressOrZero(partner); err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		if event.ActivatedBy, err = addressOrZero(by); err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		if event.OldBackupKey, err = addressOrZero(oldBackup); err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		out = append(out, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return out, nil
}

const putUserSQL = `INSERT INTO users (address, main_key, backup_key, active, partner, updated_at)
 VALUES (?, ?, ?, ?, ?, ?)
 ON CONFLICT(address) DO UPDATE SET
   main_key = excluded.main_key,
   backup_key = excluded.backup_key,
   active = excluded.active,
   partner = excluded.partner,
   updated_at = excluded.updated_at`

func putUserArgs(addr domain.Address, user domain.User) []any {
	active := int64(0)
	if user.Active {
		active = 1
	}
	return []any{
		addr.Hex(),
		user.MainKey.Hex(),
		user.BackupKey.Hex(),
		active,
		user.Partner.Hex(),
		time.Now().UTC().UnixMilli(),
	}
}

func scanUser(mainKey, backupKey string, active int64, partner string) (domain.User, error) {
	var (
		user domain.User
		err  error
	)
	if user.MainKey, err = domain.ParseAddress(mainKey); err != nil {
		return domain.User{}, err
	}
	if user.BackupKey, err = domain.ParseAddress(backupKey); err != nil {
		return domain.User{}, err
	}
	if user.Partner, err = domain.ParseAddress(partner); err != nil {
		return domain.User{}, err
	}
	user.Active = active != 0
	return user, nil
}

func hexOrEmpty(addr domain.Address) string {
	if addr.IsZero() {
		return ""
	}
	return addr.Hex()
}

func addressOrZero(s string) (domain.Address, error) {
	if s == "" {
		return domain.Address{}, nil
	}
	return domain.ParseAddress(s)
}

// Compile-time assertions that Store implements the storage contracts.
var (
	_ domain.UserStore = (*Store)(nil)
	_ domain.EventLog  = (*Store)(nil)
)
