package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"resume-ats/resume/model"
)

const defaultExternalTimeout = 15 * time.Second

// Config selects an optional external scoring service. An empty URL means
// local scoring only.
type Config struct {
	URL     string
	Key     string
	Timeout time.Duration
}

// Engine scores records, transparently substituting an external service
// when configured. Any external failure (network, timeout, non-2xx,
// malformed body) falls back silently and fully to the local rubric; a
// single failed call triggers immediate fallback, never a retry.
type Engine struct {
	cfg    Config
	client *http.Client
}

// NewEngine builds an Engine. Safe to call with a zero Config.
func NewEngine(cfg Config) *Engine {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultExternalTimeout
	}
	return &Engine{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// Score computes a Result for the record. The caller cannot observe which
// path produced it except through Breakdown, which the external path omits.
func (e *Engine) Score(ctx context.Context, record model.ResumeRecord) Result {
	if e == nil || e.cfg.URL == "" {
		return Score(record)
	}
	result, err := e.scoreRemote(ctx, record)
	if err != nil {
		return Score(record)
	}
	return result
}

// externalResponse mirrors the documented service contract. Pointer fields
// distinguish a missing key from a zero score.
type externalResponse struct {
	Score        *int     `json:"score"`
	KeywordScore *int     `json:"keyword_score"`
	FormatScore  *int     `json:"format_score"`
	Suggestions  []string `json:"suggestions"`
}

func (e *Engine) scoreRemote(ctx context.Context, record model.ResumeRecord) (Result, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return Result{}, fmt.Errorf("marshal record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if e.cfg.Key != "" {
		req.Header.Set("Authorization", "Bearer "+e.cfg.Key)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("post score: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, fmt.Errorf("external scorer status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Result{}, fmt.Errorf("read response: %w", err)
	}

	var ext externalResponse
	if err := json.Unmarshal(body, &ext); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}
	if ext.Score == nil || ext.KeywordScore == nil || ext.FormatScore == nil {
		return Result{}, fmt.Errorf("external scorer response missing score fields")
	}

	suggestions := ext.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	return Result{
		Score:        clamp(*ext.Score),
		KeywordScore: clamp(*ext.KeywordScore),
		FormatScore:  clamp(*ext.FormatScore),
		Suggestions:  suggestions,
	}, nil
}
