package enhance

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"resume-ats/internal/llm"
	"resume-ats/resume/model"
)

func baseRecord() model.ResumeRecord {
	return model.ResumeRecord{
		PersonalInfo: model.PersonalInfo{
			Name:  "Jane Doe",
			Email: "jane@example.com",
		},
		Skills: []string{"Python", "Airflow", "Sql"},
		Experience: []model.Experience{
			{
				Title: "Data Engineer",
				Dates: "Jan 2020 - Jan 2023",
				Responsibilities: []string{
					"Improved pipeline latency by 40%",
					"fixed bugs",
				},
			},
		},
	}
}

func TestEnhanceSynthesizesSummary(t *testing.T) {
	prev := timeNow
	timeNow = func() time.Time { return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC) }
	defer func() { timeNow = prev }()

	record := baseRecord()
	enhanced, changes := Enhance(record, "", LevelModerate)

	summary := enhanced.PersonalInfo.Summary
	if summary == "" {
		t.Fatal("expected synthesized summary")
	}
	if !strings.Contains(summary, "Data Engineer") {
		t.Fatalf("summary missing role: %q", summary)
	}
	if !strings.Contains(summary, "Python") {
		t.Fatalf("summary missing skill: %q", summary)
	}
	if !strings.Contains(summary, "3+ years") {
		t.Fatalf("summary missing tenure: %q", summary)
	}

	foundLog := false
	for _, c := range changes {
		if c == "Updated professional summary" {
			foundLog = true
		}
	}
	if !foundLog {
		t.Fatalf("expected summary change log, got %v", changes)
	}
}

func TestEnhanceLeavesProseSummaryVerbatim(t *testing.T) {
	record := baseRecord()
	record.PersonalInfo.Summary = "Seasoned data engineer who builds reliable pipelines, mentors juniors, and ships on time."

	enhanced, _ := Enhance(record, "Platform Engineer", LevelAggressive)
	if enhanced.PersonalInfo.Summary != record.PersonalInfo.Summary {
		t.Fatalf("prose summary was rewritten: %q", enhanced.PersonalInfo.Summary)
	}
}

func TestEnhanceShortSummaryConnectors(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelConservative, "Backend Engineer. Go enthusiast"},
		{LevelModerate, "Backend Engineer — Go enthusiast"},
		{LevelAggressive, "Backend Engineer known for driving measurable outcomes. Go enthusiast"},
	}
	for _, tt := range tests {
		record := baseRecord()
		record.PersonalInfo.Summary = "Go enthusiast"
		enhanced, _ := Enhance(record, "Backend Engineer", tt.level)
		if enhanced.PersonalInfo.Summary != tt.want {
			t.Fatalf("level %s: summary = %q, want %q", tt.level, enhanced.PersonalInfo.Summary, tt.want)
		}
	}
}

func TestEnhanceBulletVerbPrefix(t *testing.T) {
	record := baseRecord()
	enhanced, _ := Enhance(record, "", LevelModerate)

	bullets := enhanced.Experience[0].Responsibilities
	if bullets[1] != "Implemented fixed bugs" {
		t.Fatalf("bullet = %q", bullets[1])
	}
	// Strong-verb bullets keep their opening.
	if !strings.HasPrefix(bullets[0], "Improved pipeline latency") {
		t.Fatalf("bullet = %q", bullets[0])
	}
}

func TestEnhanceBulletLowercaseStrongVerb(t *testing.T) {
	if got := enhanceBullet("implemented CI pipeline", ""); got != "implemented CI pipeline" {
		t.Fatalf("bullet = %q", got)
	}
}

func TestEnhanceBulletRoleSuffix(t *testing.T) {
	record := baseRecord()
	enhanced, _ := Enhance(record, "ML Engineer", LevelModerate)

	for _, b := range enhanced.Experience[0].Responsibilities {
		if !strings.Contains(b, "ML Engineer") {
			t.Fatalf("bullet missing role mention: %q", b)
		}
	}
}

func TestEnhanceSkillsRerankAndCap(t *testing.T) {
	record := baseRecord()
	record.Skills = []string{"Docker", "python scripting", "Go", "Python", "docker"}
	enhanced, _ := Enhance(record, "Python", LevelModerate)

	skills := enhanced.Skills
	if skills[0] != "python scripting" || skills[1] != "Python" {
		t.Fatalf("role-relevant skills not front-ranked: %v", skills)
	}
	for i, s := range skills {
		for j := i + 1; j < len(skills); j++ {
			if strings.EqualFold(s, skills[j]) {
				t.Fatalf("duplicate skill survived: %v", skills)
			}
		}
	}

	record.Skills = manySkillNames(40)
	enhanced, _ = Enhance(record, "", LevelModerate)
	if len(enhanced.Skills) != 25 {
		t.Fatalf("expected cap at 25, got %d", len(enhanced.Skills))
	}
}

func TestEnhanceDoesNotMutateInput(t *testing.T) {
	record := baseRecord()
	snapshot := record.Clone()
	_, _ = Enhance(record, "SRE", LevelAggressive)
	if !reflect.DeepEqual(record.Clone(), snapshot) {
		t.Fatalf("input record was mutated:\nbefore %+v\nafter  %+v", snapshot, record)
	}
}

type failingClient struct{}

func (failingClient) CompleteJSON(ctx context.Context, system, prompt string) (json.RawMessage, error) {
	return nil, errors.New("model unavailable")
}

type recordingClient struct {
	response json.RawMessage
}

func (c recordingClient) CompleteJSON(ctx context.Context, system, prompt string) (json.RawMessage, error) {
	return c.response, nil
}

func TestEnhancerRemoteFailureKeepsLocalResult(t *testing.T) {
	record := baseRecord()
	local, localChanges := Enhance(record, "SRE", LevelModerate)

	enhancer := NewEnhancer(failingClient{})
	got, gotChanges := enhancer.Enhance(context.Background(), record, "SRE", LevelModerate)

	if !reflect.DeepEqual(got, local) {
		t.Fatalf("remote failure must not alter local output:\nwant %+v\ngot  %+v", local, got)
	}
	if !reflect.DeepEqual(gotChanges, localChanges) {
		t.Fatalf("changes differ: %v vs %v", gotChanges, localChanges)
	}
}

func TestEnhancerDisabledClientKeepsLocalResult(t *testing.T) {
	record := baseRecord()
	local, _ := Enhance(record, "", LevelModerate)

	enhancer := NewEnhancer(llm.Disabled{})
	got, _ := enhancer.Enhance(context.Background(), record, "", LevelModerate)
	if !reflect.DeepEqual(got, local) {
		t.Fatalf("disabled client must yield local output")
	}
}

func TestEnhancerMalformedRemoteKeepsLocalResult(t *testing.T) {
	record := baseRecord()
	local, _ := Enhance(record, "", LevelModerate)

	enhancer := NewEnhancer(recordingClient{response: json.RawMessage(`{"personal_info": 12}`)})
	got, _ := enhancer.Enhance(context.Background(), record, "", LevelModerate)
	if !reflect.DeepEqual(got, local) {
		t.Fatalf("malformed remote output must be discarded")
	}
}

func manySkillNames(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "Skill" + string(rune('A'+i%26)) + string(rune('0'+i/26))
	}
	return out
}
