// Package metadata is a small key/value store in the local SQLite file. It
// keeps the session between runs.
package metadata

import (
	"context"
)

// Well-known keys.
const (
	// KeySessionCookies holds the session cookies as a JSON array.
	KeySessionCookies = "session_cookies"
	// KeyEmail holds the email of the last signed-in user.
	KeyEmail = "email"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
