package history

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new snapshot.
func (r *PGRepo) Create(ctx context.Context, snapshot Snapshot) error {
	const query = `
INSERT INTO score_snapshots (id, label, score, keyword_score, format_score, breakdown, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	var breakdown any
	if len(snapshot.Breakdown) > 0 {
		breakdown = []byte(snapshot.Breakdown)
	}
	_, err := r.DB.ExecContext(ctx, query,
		snapshot.ID,
		snapshot.Label,
		snapshot.Score,
		snapshot.KeywordScore,
		snapshot.FormatScore,
		breakdown,
		snapshot.CreatedAt,
	)
	return err
}

// List returns snapshots newest-first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Snapshot, error) {
	const query = `
SELECT id, label, score, keyword_score, format_score, breakdown, created_at
FROM score_snapshots
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshots := make([]Snapshot, 0, limit)
	for rows.Next() {
		var s Snapshot
		var breakdown sql.NullString
		if err := rows.Scan(&s.ID, &s.Label, &s.Score, &s.KeywordScore, &s.FormatScore, &breakdown, &s.CreatedAt); err != nil {
			return nil, err
		}
		if breakdown.Valid && breakdown.String != "" {
			s.Breakdown = []byte(breakdown.String)
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}
