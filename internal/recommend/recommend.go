// Package recommend produces structured improvement advice for a scored
// resume. A deterministic fallback always exists; a remote model, when
// configured, may replace it with richer output.
package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"resume-ats/internal/llm"
	"resume-ats/internal/scoring"
	"resume-ats/internal/shared/telemetry"
	"resume-ats/resume/model"
)

// Item is a single actionable recommendation.
type Item struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Detail         string `json:"detail"`
	ImpactEstimate string `json:"impact_estimate"`
	Category       string `json:"category"`
}

// Report is the full recommendation payload. Error is set when a remote
// attempt failed and the fallback was substituted.
type Report struct {
	Summary         string   `json:"summary"`
	Recommendations []Item   `json:"recommendations"`
	KeywordsToAdd   []string `json:"keywords_to_add"`
	FieldsChanged   []string `json:"fields_changed_suggestion"`
	Provider        string   `json:"provider"`
	Error           string   `json:"error,omitempty"`
}

// Fallback builds a deterministic report from fixed score thresholds. It
// never fails.
func Fallback(record model.ResumeRecord, score scoring.Result, targetRole string) Report {
	report := Report{
		Recommendations: make([]Item, 0, 4),
		KeywordsToAdd:   []string{},
		FieldsChanged: []string{
			"experience[].responsibilities",
			"personal_info.summary",
			"skills",
		},
		Provider: "fallback",
	}

	if score.KeywordScore < 60 {
		report.Summary = "The resume needs stronger keyword coverage to pass automated screening."
	} else {
		report.Summary = "The resume is in reasonable shape; targeted edits below will lift the score further."
	}

	if score.KeywordScore < 70 {
		report.Recommendations = append(report.Recommendations, Item{
			ID:             "keywords",
			Title:          "Add role-relevant keywords",
			Detail:         "Work the terms recruiters search for into the skills section and experience bullets.",
			ImpactEstimate: "high",
			Category:       "keyword",
		})
		report.KeywordsToAdd = keywordSuggestions(record, targetRole)
	}

	quantifyImpact := "medium"
	if len(record.Experience) > 0 {
		quantifyImpact = "high"
	}
	report.Recommendations = append(report.Recommendations, Item{
		ID:             "quantify",
		Title:          "Quantify achievements",
		Detail:         "Attach numbers to outcomes: throughput, revenue, latency, team size, error rates.",
		ImpactEstimate: quantifyImpact,
		Category:       "content",
	})

	if score.FormatScore < 70 {
		report.Recommendations = append(report.Recommendations, Item{
			ID:             "formatting",
			Title:          "Tighten formatting",
			Detail:         "Use consistent date formats and concise bullet points starting with action verbs.",
			ImpactEstimate: "medium",
			Category:       "formatting",
		})
	}

	return report
}

// keywordSuggestions returns up to 10 lowercased skills the record already
// carries, so callers can echo them back into prose, plus the target role.
func keywordSuggestions(record model.ResumeRecord, targetRole string) []string {
	out := make([]string, 0, 10)
	seen := make(map[string]bool, 10)
	if role := strings.ToLower(strings.TrimSpace(targetRole)); role != "" {
		out = append(out, role)
		seen[role] = true
	}
	for _, s := range record.Skills {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
		if len(out) == 10 {
			break
		}
	}
	return out
}

// Generator asks a remote model for recommendations and degrades to the
// fallback on any failure.
type Generator struct {
	Client llm.Client
}

func NewGenerator(client llm.Client) *Generator {
	if client == nil {
		client = llm.Disabled{}
	}
	return &Generator{Client: client}
}

const recommendSystemPrompt = `You are an ATS resume coach. Given a resume and its scores as JSON, respond with a JSON object: {"summary": string, "recommendations": [{"id": string, "title": string, "detail": string, "impact_estimate": "high"|"medium"|"low", "category": string}], "keywords_to_add": [string], "fields_changed_suggestion": [string]}. Respond with JSON only.`

// Generate never returns an error: remote failures produce the fallback
// report, annotated with the failure when one occurred.
func (g *Generator) Generate(ctx context.Context, record model.ResumeRecord, score scoring.Result, targetRole string) Report {
	report, err := g.remote(ctx, record, score, targetRole)
	if err == nil {
		return report
	}
	if errors.Is(err, llm.ErrDisabled) {
		return Fallback(record, score, targetRole)
	}

	telemetry.Error("recommend.remote_failed", map[string]any{"error": err.Error()})
	fallback := Fallback(record, score, targetRole)
	fallback.Error = err.Error()
	return fallback
}

type remotePayload struct {
	Resume     model.ResumeRecord `json:"resume"`
	Score      scoring.Result     `json:"score"`
	TargetRole string             `json:"target_role,omitempty"`
}

func (g *Generator) remote(ctx context.Context, record model.ResumeRecord, score scoring.Result, targetRole string) (Report, error) {
	payload, err := json.Marshal(remotePayload{Resume: record, Score: score, TargetRole: targetRole})
	if err != nil {
		return Report{}, err
	}

	raw, err := g.Client.CompleteJSON(ctx, recommendSystemPrompt, string(payload))
	if err != nil {
		return Report{}, err
	}

	var report Report
	if err := json.Unmarshal(raw, &report); err != nil {
		return Report{}, err
	}
	if strings.TrimSpace(report.Summary) == "" || len(report.Recommendations) == 0 {
		return Report{}, errIncompleteReport
	}
	if report.KeywordsToAdd == nil {
		report.KeywordsToAdd = []string{}
	}
	if report.FieldsChanged == nil {
		report.FieldsChanged = []string{}
	}
	report.Provider = "model"
	return report, nil
}

var errIncompleteReport = errors.New("model response missing summary or recommendations")
