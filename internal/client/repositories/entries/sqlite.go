package entries

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/moodjournal/internal/client/models"
	"github.com/dmitrijs2005/moodjournal/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const upsertQuery = `INSERT INTO entries (id, mood, tags, note, ai_response, disclaimer, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET mood = excluded.mood,
		tags = excluded.tags,
		note = excluded.note,
		ai_response = excluded.ai_response,
		disclaimer = excluded.disclaimer,
		created_at = excluded.created_at`

func upsert(ctx context.Context, db dbx.DBTX, e models.Entry) error {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	encoded, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}
	_, err = db.ExecContext(ctx, upsertQuery,
		e.ID, string(e.Mood), string(encoded), e.Note, e.AIResponse, e.Disclaimer, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert entry: %w", err)
	}
	return nil
}

// Upsert inserts or updates an entry by id.
func (r *SQLiteRepository) Upsert(ctx context.Context, e models.Entry) error {
	return upsert(ctx, r.db, e)
}

// ReplaceAll deletes every mirrored entry and inserts entries. When the
// repository is bound to a *sql.DB the swap runs in its own transaction;
// when bound to a *sql.Tx it joins that transaction.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, entries []models.Entry) error {
	replace := func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
			return fmt.Errorf("failed to clear entries: %w", err)
		}
		for _, e := range entries {
			if err := upsert(ctx, tx, e); err != nil {
				return err
			}
		}
		return nil
	}

	if b, ok := r.db.(dbx.TxBeginner); ok {
		return dbx.WithTx(ctx, b, nil, replace)
	}
	return replace(ctx, r.db)
}

// DeleteByID removes an entry by id.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}

// GetAll lists all entries ordered by created_at, newest first.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Entry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, mood, tags, note, ai_response, disclaimer, created_at FROM entries ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	var result []models.Entry
	for rows.Next() {
		var (
			e    models.Entry
			mood string
			tags string
		)
		if err := rows.Scan(&e.ID, &mood, &tags, &e.Note, &e.AIResponse, &e.Disclaimer, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		e.Mood = models.Mood(mood)
		if err := json.Unmarshal([]byte(tags), &e.Tags); err != nil {
			return nil, fmt.Errorf("failed to decode tags of entry %s: %w", e.ID, err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
