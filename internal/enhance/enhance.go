// Package enhance rewrites a resume record with deterministic heuristics:
// summary synthesis, responsibility bullet strengthening, and role-aware
// skill re-ranking. An optional remote augmentation pass may refine the
// result further but never replaces the local output on failure.
package enhance

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"unicode"

	"resume-ats/internal/llm"
	"resume-ats/internal/shared/telemetry"
	"resume-ats/resume/model"
)

// Level controls how aggressively the summary connector rewrites existing
// short summaries.
type Level string

const (
	LevelConservative Level = "conservative"
	LevelModerate     Level = "moderate"
	LevelAggressive   Level = "aggressive"
)

// ParseLevel maps a request string onto a Level, defaulting to moderate.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(LevelConservative):
		return LevelConservative
	case string(LevelAggressive):
		return LevelAggressive
	default:
		return LevelModerate
	}
}

var strongVerbs = []string{"Led", "Optimized", "Implemented", "Automated", "Delivered", "Improved"}

// Enhance applies the local heuristics and returns a new record plus a
// modification log. The input record is never mutated.
func Enhance(record model.ResumeRecord, targetRole string, level Level) (model.ResumeRecord, []string) {
	out := record.Clone()
	out = out.Normalize()

	out.PersonalInfo.Summary = enhanceSummary(out, targetRole, level)

	for i := range out.Experience {
		for j, line := range out.Experience[i].Responsibilities {
			out.Experience[i].Responsibilities[j] = enhanceBullet(line, targetRole)
		}
	}

	out.Skills = enhanceSkills(out.Skills, targetRole)

	return out, buildLog(record, out)
}

func enhanceBullet(line, targetRole string) string {
	line = strings.TrimSpace(strings.TrimLeft(line, "•-* \t"))
	if line == "" {
		return line
	}
	if !startsWithStrongVerb(line) {
		runes := []rune(line)
		runes[0] = unicode.ToLower(runes[0])
		line = "Implemented " + string(runes)
	}
	if targetRole != "" && !strings.Contains(strings.ToLower(line), strings.ToLower(targetRole)) {
		line += " for " + targetRole + " workflows"
	}
	return line
}

func startsWithStrongVerb(line string) bool {
	lower := strings.ToLower(line)
	for _, verb := range strongVerbs {
		if strings.HasPrefix(lower, strings.ToLower(verb)) {
			return true
		}
	}
	return false
}

// enhanceSkills deduplicates case-insensitively keeping first occurrence,
// stable-sorts role-relevant skills to the front, and caps the list at 25.
func enhanceSkills(skills []string, targetRole string) []string {
	seen := make(map[string]bool, len(skills))
	deduped := make([]string, 0, len(skills))
	for _, s := range skills {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, strings.TrimSpace(s))
	}

	if targetRole != "" {
		role := strings.ToLower(targetRole)
		relevant := make([]string, 0, len(deduped))
		rest := make([]string, 0, len(deduped))
		for _, s := range deduped {
			if strings.Contains(strings.ToLower(s), role) {
				relevant = append(relevant, s)
			} else {
				rest = append(rest, s)
			}
		}
		deduped = append(relevant, rest...)
	}

	if len(deduped) > 25 {
		deduped = deduped[:25]
	}
	return deduped
}

// Enhancer wraps the local heuristics with an optional remote overlay.
type Enhancer struct {
	Client llm.Client
}

func NewEnhancer(client llm.Client) *Enhancer {
	if client == nil {
		client = llm.Disabled{}
	}
	return &Enhancer{Client: client}
}

// Enhance runs the local pass, then attempts the remote overlay. Any remote
// failure leaves the locally enhanced record untouched.
func (e *Enhancer) Enhance(ctx context.Context, record model.ResumeRecord, targetRole string, level Level) (model.ResumeRecord, []string) {
	enhanced, changes := Enhance(record, targetRole, level)

	augmented, err := e.augment(ctx, enhanced, targetRole)
	if err != nil {
		if !errors.Is(err, llm.ErrDisabled) {
			telemetry.Error("enhance.augment_failed", map[string]any{"error": err.Error()})
		}
		return enhanced, changes
	}
	return augmented, buildLog(record, augmented)
}

const augmentSystemPrompt = `You are a resume editor. Given a resume as JSON, return the same JSON structure with the professional summary and responsibility bullets polished. Keep all factual content. Do not invent employers, dates, or credentials. Respond with JSON only.`

func (e *Enhancer) augment(ctx context.Context, record model.ResumeRecord, targetRole string) (model.ResumeRecord, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return model.ResumeRecord{}, err
	}

	prompt := "Target role: " + targetRole + "\n\nResume:\n" + string(payload)
	raw, err := e.Client.CompleteJSON(ctx, augmentSystemPrompt, prompt)
	if err != nil {
		return model.ResumeRecord{}, err
	}

	var out model.ResumeRecord
	if err := json.Unmarshal(raw, &out); err != nil {
		return model.ResumeRecord{}, err
	}
	out = out.Normalize()
	return out, nil
}
