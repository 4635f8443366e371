package history

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"resume-ats/internal/scoring"
	"resume-ats/internal/shared/telemetry"
)

// Service records and lists score snapshots on top of a Repo.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Record persists a scoring result under the given label. The breakdown is
// stored as-is so past runs stay reproducible when the rubric evolves.
func (s *Service) Record(ctx context.Context, label string, result scoring.Result) (Snapshot, error) {
	snapshot := Snapshot{
		ID:           uuid.NewString(),
		Label:        label,
		Score:        result.Score,
		KeywordScore: result.KeywordScore,
		FormatScore:  result.FormatScore,
		CreatedAt:    time.Now().UTC(),
	}
	if result.Breakdown != nil {
		raw, err := json.Marshal(result.Breakdown)
		if err != nil {
			telemetry.Error("history.breakdown_marshal_failed", map[string]any{"error": err.Error()})
		} else {
			snapshot.Breakdown = raw
		}
	}

	if err := s.Repo.Create(ctx, snapshot); err != nil {
		return Snapshot{}, err
	}
	return snapshot, nil
}

// List returns recorded snapshots newest-first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Snapshot, error) {
	return s.Repo.List(ctx, limit, offset)
}
