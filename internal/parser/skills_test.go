package parser

import (
	"strings"
	"testing"
)

func TestExtractSkillsKeywordScan(t *testing.T) {
	text := "Built services in Python with PostgreSQL and Docker on AWS."
	skills := extractSkills(text)

	want := map[string]bool{"python": true, "postgresql": true, "docker": true, "aws": true}
	got := map[string]bool{}
	for _, s := range skills {
		got[strings.ToLower(s)] = true
	}
	for k := range want {
		if !got[k] {
			t.Fatalf("missing %q in %v", k, skills)
		}
	}
}

func TestExtractSkillsSectionTokens(t *testing.T) {
	text := "Skills: Terraform, Ansible | Prometheus\nEducation\nB.S. in CS\n"
	skills := extractSkills(text)

	got := map[string]bool{}
	for _, s := range skills {
		got[s] = true
	}
	for _, w := range []string{"Terraform", "Ansible", "Prometheus"} {
		if !got[w] {
			t.Fatalf("missing %q in %v", w, skills)
		}
	}
}

func TestExtractSkillsDropsProseTokens(t *testing.T) {
	text := "Skills:\nResponsible for leading a large cross functional team\nGo\n"
	skills := extractSkills(text)
	for _, s := range skills {
		if len(strings.Fields(s)) > 4 {
			t.Fatalf("prose token leaked: %q", s)
		}
	}
}

func TestExtractSkillsAcronymsKeepCase(t *testing.T) {
	skills := extractSkills("Skills: AWS CDK, sql\n")
	var hasCDK, hasSql bool
	for _, s := range skills {
		if s == "AWS CDK" {
			hasCDK = true
		}
		if s == "Sql" {
			hasSql = true
		}
	}
	if !hasCDK {
		t.Fatalf("expected AWS CDK kept uppercase, got %v", skills)
	}
	if !hasSql {
		t.Fatalf("expected sql title-cased, got %v", skills)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"machine learning", "Machine Learning"},
		{"node.js", "Node.Js"},
		{"ci/cd", "Ci/Cd"},
		{"rest api", "Rest Api"},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Fatalf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractEducation(t *testing.T) {
	text := "Education\n" +
		"B.S. in Computer Science, ABC University, 2018 - 2022\n" +
		"M.S. in Data Science, XYZ Institute, 2023\n" +
		"\n" +
		"Experience\n"
	entries := extractEducation(text)
	if len(entries) != 2 {
		t.Fatalf("expected 2 education entries, got %v", entries)
	}
	if !strings.Contains(entries[0], "ABC University") {
		t.Fatalf("entries[0] = %q", entries[0])
	}
	if !strings.Contains(entries[1], "XYZ Institute") {
		t.Fatalf("entries[1] = %q", entries[1])
	}
}

func TestExtractEducationWithoutSection(t *testing.T) {
	entries := extractEducation("no schooling mentioned here")
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %v", entries)
	}
}
