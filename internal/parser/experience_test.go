package parser

import (
	"strings"
	"testing"
)

func TestExtractExperienceSingleEntry(t *testing.T) {
	text := "Experience\n" +
		"Software Engineer\n" +
		"Acme Corp\n" +
		"Jan 2023 - Present\n" +
		"- Built ML pipelines\n" +
		"- Improved ETL performance\n"
	jobs := extractExperience(text)
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %v", jobs)
	}
	job := jobs[0]
	if job.Title != "Software Engineer" || job.Company != "Acme Corp" {
		t.Fatalf("title=%q company=%q", job.Title, job.Company)
	}
	if job.Dates != "Jan 2023 - Present" {
		t.Fatalf("dates = %q", job.Dates)
	}
	if len(job.Responsibilities) != 2 || job.Responsibilities[0] != "Built ML pipelines" {
		t.Fatalf("responsibilities = %v", job.Responsibilities)
	}
}

func TestExtractExperienceMultipleEntries(t *testing.T) {
	text := "Work Experience\n" +
		"Senior Data Engineer\n" +
		"Globex\n" +
		"2020 - 2022\n" +
		"* Migrated warehouse to Snowflake\n" +
		"\n" +
		"Data Analyst\n" +
		"Initech\n" +
		"2018 - 2020\n" +
		"\n" +
		"Education\n" +
		"B.S. in Statistics, 2018\n"
	jobs := extractExperience(text)
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %v", jobs)
	}
	if jobs[0].Title != "Senior Data Engineer" || jobs[1].Company != "Initech" {
		t.Fatalf("jobs = %+v", jobs)
	}
	if len(jobs[0].Responsibilities) != 1 {
		t.Fatalf("responsibilities = %v", jobs[0].Responsibilities)
	}
}

func TestExtractExperienceNoSection(t *testing.T) {
	if jobs := extractExperience("Skills: Python\n"); len(jobs) != 0 {
		t.Fatalf("expected no jobs, got %v", jobs)
	}
}

func TestExtractProjects(t *testing.T) {
	text := "Projects\n" +
		"Log Pipeline\n" +
		"Streaming ingestion for application logs\n" +
		"Tech: Kafka, Flink\n" +
		"\n" +
		"Budget Tracker\n" +
		"Personal finance dashboard\n" +
		"\n" +
		"Education\n"
	projects := extractProjects(text)
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %v", projects)
	}
	if projects[0].Name != "Log Pipeline" {
		t.Fatalf("name = %q", projects[0].Name)
	}
	if !strings.Contains(projects[0].Description, "Streaming ingestion") {
		t.Fatalf("description = %q", projects[0].Description)
	}
	if !strings.Contains(projects[0].Technologies, "Kafka") {
		t.Fatalf("technologies = %q", projects[0].Technologies)
	}
	if projects[1].Name != "Budget Tracker" || projects[1].Technologies != "" {
		t.Fatalf("projects[1] = %+v", projects[1])
	}
}
