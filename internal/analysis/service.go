// Package analysis is the application layer: it chains document
// extraction, parsing, scoring, enhancement, and recommendations behind a
// single service and exposes them over HTTP.
package analysis

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"resume-ats/internal/enhance"
	"resume-ats/internal/extract"
	"resume-ats/internal/history"
	"resume-ats/internal/parser"
	"resume-ats/internal/recommend"
	"resume-ats/internal/scoring"
	"resume-ats/internal/shared/metrics"
	"resume-ats/internal/shared/storage/object"
	"resume-ats/internal/shared/telemetry"
	"resume-ats/internal/shared/util"
	"resume-ats/resume/model"
)

// ErrInvalidInput marks caller mistakes that map to a 400 response.
var ErrInvalidInput = errors.New("invalid input")

// Service orchestrates the resume pipeline.
type Service struct {
	Parser      *parser.Parser
	Scorer      *scoring.Engine
	Enhancer    *enhance.Enhancer
	Recommender *recommend.Generator
	History     *history.Service
	Store       object.ObjectStore
}

// Parse turns raw resume text into a structured record.
func (s *Service) Parse(text string) model.ResumeRecord {
	metrics.IncParse()
	return s.Parser.Parse(text)
}

// Score computes the ATS score for a record and snapshots the result.
func (s *Service) Score(ctx context.Context, record model.ResumeRecord, label string) scoring.Result {
	record = record.Normalize()
	metrics.IncScore()
	start := metrics.NowMillis()
	result := s.Scorer.Score(ctx, record)
	metrics.ObserveScoreDurationMs(metrics.NowMillis() - start)

	if s.History != nil && label != "" {
		if _, err := s.History.Record(ctx, label, result); err != nil {
			telemetry.Error("analysis.history_record_failed", map[string]any{"error": err.Error()})
		}
	}
	return result
}

// EnhanceResult bundles the enhanced record with before/after scores.
type EnhanceResult struct {
	Record      model.ResumeRecord `json:"resume"`
	Changes     []string           `json:"changes"`
	ScoreBefore scoring.Result     `json:"score_before"`
	ScoreAfter  scoring.Result     `json:"score_after"`
}

// Enhance rewrites the record and re-scores it so callers see the delta.
func (s *Service) Enhance(ctx context.Context, record model.ResumeRecord, targetRole string, level enhance.Level) EnhanceResult {
	record = record.Normalize()
	metrics.IncEnhance()
	before := s.Scorer.Score(ctx, record)

	enhanced, changes := s.Enhancer.Enhance(ctx, record, targetRole, level)
	after := s.Score(ctx, enhanced, "enhanced")

	return EnhanceResult{
		Record:      enhanced,
		Changes:     changes,
		ScoreBefore: before,
		ScoreAfter:  after,
	}
}

// Recommend produces improvement advice for a record. A caller-supplied
// score is used as-is; otherwise the record is scored first.
func (s *Service) Recommend(ctx context.Context, record model.ResumeRecord, score *scoring.Result, targetRole string) recommend.Report {
	record = record.Normalize()
	metrics.IncRecommend()
	if score == nil {
		computed := s.Scorer.Score(ctx, record)
		score = &computed
	}
	return s.Recommender.Generate(ctx, record, *score, targetRole)
}

// UploadResult is the response for a document upload: the stored key plus
// the full parse-and-score pipeline output.
type UploadResult struct {
	ID          string             `json:"id"`
	StorageKey  string             `json:"storage_key,omitempty"`
	Fingerprint string             `json:"fingerprint"`
	Text        string             `json:"-"`
	Record      model.ResumeRecord `json:"resume"`
	Score       scoring.Result     `json:"score"`
}

// Upload extracts text from an uploaded document, stores the original when
// a store is configured, and runs the parse-and-score pipeline.
func (s *Service) Upload(ctx context.Context, fileName string, mimeType string, r io.Reader) (UploadResult, error) {
	metrics.IncUpload()
	if strings.TrimSpace(fileName) == "" {
		metrics.IncUploadFailed()
		return UploadResult{}, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		metrics.IncUploadFailed()
		return UploadResult{}, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		metrics.IncUploadFailed()
		return UploadResult{}, fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}

	text, err := extract.TextFromBytes(data, mimeType, fileName)
	if err != nil {
		metrics.IncUploadFailed()
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			return UploadResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return UploadResult{}, err
	}

	result := UploadResult{
		ID:          uuid.NewString(),
		Text:        text,
		Fingerprint: util.Fingerprint(data),
	}
	telemetry.Info("analysis.upload", map[string]any{
		"id":          result.ID,
		"file":        fileName,
		"fingerprint": result.Fingerprint,
		"bytes":       len(data),
	})

	if s.Store != nil {
		key, _, _, err := s.Store.Save(ctx, "resumes", fileName, bytes.NewReader(data))
		if err != nil {
			telemetry.Error("analysis.upload_store_failed", map[string]any{"error": err.Error(), "file": fileName})
		} else {
			result.StorageKey = key
		}
		if _, _, _, err := s.Store.Save(ctx, "extracted", fileName+".extracted.txt", strings.NewReader(text)); err != nil {
			telemetry.Error("analysis.upload_store_failed", map[string]any{"error": err.Error(), "file": fileName + ".extracted.txt"})
		}
	}

	result.Record = s.Parser.Parse(text)
	result.Score = s.Score(ctx, result.Record, fileName)
	return result, nil
}

// History lists recorded score snapshots.
func (s *Service) HistoryList(ctx context.Context, limit, offset int) ([]history.Snapshot, error) {
	if s.History == nil {
		return []history.Snapshot{}, nil
	}
	return s.History.List(ctx, limit, offset)
}
