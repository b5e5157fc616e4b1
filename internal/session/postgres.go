package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"mostface/internal/models"
)

// PostgresAdapter persists session slices in a single key-value table.
type PostgresAdapter struct {
	db  *sqlx.DB
	log *logrus.Entry
}

// NewPostgresAdapter connects to Postgres and runs migrations.
func NewPostgresAdapter(dsn string, log *logrus.Entry) (*PostgresAdapter, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &PostgresAdapter{db: db, log: log}, nil
}

func runMigrations(db *sqlx.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS session_kv (
            key TEXT PRIMARY KEY,
            value JSONB NOT NULL,
            updated_at TIMESTAMPTZ DEFAULT NOW()
        );`,
	}
	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

// Load reads both persisted keys; a missing row is an absent slice.
func (a *PostgresAdapter) Load(ctx context.Context) (*Snapshot, error) {
	currentRaw, err := a.getOrNil(ctx, CurrentUserKey)
	if err != nil {
		return nil, err
	}
	directoryRaw, err := a.getOrNil(ctx, UserDirectoryKey)
	if err != nil {
		return nil, err
	}
	return decodeSnapshot(currentRaw, directoryRaw, a.log), nil
}

// SaveCurrentUser upserts the session owner; nil deletes the row (logout).
func (a *PostgresAdapter) SaveCurrentUser(ctx context.Context, user *models.User) error {
	if user == nil {
		_, err := a.db.ExecContext(ctx, `DELETE FROM session_kv WHERE key=$1`, CurrentUserKey)
		return err
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return a.upsert(ctx, CurrentUserKey, raw)
}

// SaveDirectory upserts the full user directory.
func (a *PostgresAdapter) SaveDirectory(ctx context.Context, users []models.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return a.upsert(ctx, UserDirectoryKey, raw)
}

// Close releases the pool.
func (a *PostgresAdapter) Close() error {
	return a.db.Close()
}

func (a *PostgresAdapter) upsert(ctx context.Context, key string, value []byte) error {
	_, err := a.db.ExecContext(ctx, `INSERT INTO session_kv (key, value) VALUES ($1, $2)
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`, key, value)
	return err
}

func (a *PostgresAdapter) getOrNil(ctx context.Context, key string) ([]byte, error) {
	var raw []byte
	err := a.db.GetContext(ctx, &raw, `SELECT value FROM session_kv WHERE key=$1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}
