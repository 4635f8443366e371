// Package history records score snapshots so users can track how a resume
// trends across edits.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrNotFound is returned when a snapshot does not exist.
var ErrNotFound = errors.New("snapshot not found")

// Snapshot is one recorded scoring run.
type Snapshot struct {
	ID           string          `json:"id"`
	Label        string          `json:"label"`
	Score        int             `json:"score"`
	KeywordScore int             `json:"keyword_score"`
	FormatScore  int             `json:"format_score"`
	Breakdown    json.RawMessage `json:"breakdown,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Repo defines persistence operations for snapshots.
type Repo interface {
	Create(ctx context.Context, snapshot Snapshot) error
	List(ctx context.Context, limit, offset int) ([]Snapshot, error)
}
