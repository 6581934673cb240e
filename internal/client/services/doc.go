// Package services contains the application services of the moodjournal
// client: authentication and session persistence (AuthService) and the
// journal working set with its optimistic mutations (EntryService).
package services
