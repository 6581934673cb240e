// Package cli provides the interactive moodjournal command-line client.
//
// It wires configuration, local storage and the API services into a REPL.
// On start it probes the API, restores a saved session and loads the
// working set; a background watcher keeps the online/offline mode current.
//
// Key features:
//   - Register / Login / Logout, with the session kept between runs
//   - New, edit and delete journal entries, with an AI vibe check on create
//   - Timeline grouped by recency, collapsible per group
//   - Weekly insights: mood distribution and daily trend
//   - Offline timeline from the local mirror when the API is unreachable
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
