// Package entries provides the local SQLite mirror of the journal working
// set.
//
// The mirror holds the entries of the last successful fetch together with
// the mutations made since. It is only read when the API cannot be reached,
// so the timeline can still be shown offline.
//
// Tags are stored as a JSON array in a TEXT column. created_at is stored as
// received from the API; GetAll orders by it as text, which matches
// chronological order for RFC 3339 timestamps in a single zone.
//
//	repo := entries.NewSQLiteRepository(db)
//	_ = repo.ReplaceAll(ctx, fetched)
//	_ = repo.Upsert(ctx, created)
//	list, _ := repo.GetAll(ctx)
//	_ = repo.DeleteByID(ctx, id)
package entries
