// Package client contains the client-side building blocks for talking to the
// journal API.
//
// # Overview
//
// The package provides:
//  1. The API contract (see the Client interface): authentication, entry
//     CRUD, the AI vibe check and a reachability probe.
//  2. A JSON-over-HTTP implementation (see HTTPClient) that keeps the session
//     cookie in a cookie jar, tags every request with an X-Request-ID and
//     turns non-2xx responses into *APIError values.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     SQLite mirror, applying embedded goose migrations.
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError, carrying the server message
// and the HTTP status. APIError unwraps to ErrUnauthorized for 401 and 403
// and to ErrUnavailable for 502, 503 and 504, so callers can use errors.Is.
// Transport failures wrap ErrUnavailable.
//
// All operations accept context.Context and honor cancellation and
// deadlines. HTTPClient is safe for concurrent use.
package client
