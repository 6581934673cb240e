package metadata

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/moodjournal/internal/dbx"
)

// ErrEmptyKey is returned for operations on the empty key.
var ErrEmptyKey = errors.New("metadata: empty key")

const (
	queryValue  = `SELECT value FROM metadata WHERE key = ?`
	queryAll    = `SELECT key, value FROM metadata ORDER BY key`
	upsertValue = `INSERT INTO metadata (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	removeKey   = `DELETE FROM metadata WHERE key = ?`
	removeAll   = `DELETE FROM metadata`
)

// OpError records the operation and key of a failed metadata access.
type OpError struct {
	Op  string
	Key string
	Err error
}

func (e *OpError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("metadata %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("metadata %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// SQLiteRepository keeps session values in the metadata table.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) exec(ctx context.Context, op, key, query string, args ...any) error {
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return &OpError{Op: op, Key: key, Err: err}
	}
	return nil
}

// Get returns the value stored under key, or (nil, nil) when absent.
func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	var value []byte
	switch err := r.db.QueryRowContext(ctx, queryValue, key).Scan(&value); {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, &OpError{Op: "get", Key: key, Err: err}
	}
	if value == nil {
		value = []byte{}
	}
	return value, nil
}

// Set stores value under key. A nil value is stored as an empty one so the
// key still reads back as present.
func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	if value == nil {
		value = []byte{}
	}
	return r.exec(ctx, "set", key, upsertValue, key, value)
}

// Delete removes key. Deleting an absent key is not an error.
func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return r.exec(ctx, "delete", key, removeKey, key)
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	return r.exec(ctx, "clear", "", removeAll)
}

func (r *SQLiteRepository) List(ctx context.Context) (map[string][]byte, error) {
	rows, err := r.db.QueryContext(ctx, queryAll)
	if err != nil {
		return nil, &OpError{Op: "list", Err: err}
	}
	defer rows.Close()

	all := make(map[string][]byte)
	for rows.Next() {
		var (
			key   string
			value []byte
		)
		if err := rows.Scan(&key, &value); err != nil {
			return nil, &OpError{Op: "list", Err: err}
		}
		all[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, &OpError{Op: "list", Err: err}
	}
	return all, nil
}

// GetJSON decodes the value under key into v. It reports false when the key
// is absent.
func GetJSON(ctx context.Context, r Repository, key string, v any) (bool, error) {
	raw, err := r.Get(ctx, key)
	if err != nil || raw == nil {
		return false, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, &OpError{Op: "decode", Key: key, Err: err}
	}
	return true, nil
}

// SetJSON stores v under key as JSON.
func SetJSON(ctx context.Context, r Repository, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return &OpError{Op: "encode", Key: key, Err: err}
	}
	return r.Set(ctx, key, raw)
}
