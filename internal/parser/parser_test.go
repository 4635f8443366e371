package parser

import (
	"strings"
	"testing"

	"resume-ats/resume/model"
)

const sampleResume = "John Doe\n" +
	"Email: john@example.com\n" +
	"Phone: +1 234 567 8900\n" +
	"LinkedIn: https://linkedin.com/in/johndoe\n" +
	"Skills: Python, SQL, Docker, Pandas, Numpy, Kubernetes\n" +
	"Education\n" +
	"B.S. in Computer Science, ABC University, 2018 - 2022\n" +
	"Experience\n" +
	"Software Engineer\n" +
	"Acme Corp\n" +
	"Jan 2023 - Present\n" +
	"- Built ML pipelines\n" +
	"- Improved ETL performance\n"

func TestParseSampleResume(t *testing.T) {
	record := Parse(sampleResume)

	if record.PersonalInfo.Name != "John Doe" {
		t.Fatalf("name = %q", record.PersonalInfo.Name)
	}
	if record.PersonalInfo.Email != "john@example.com" {
		t.Fatalf("email = %q", record.PersonalInfo.Email)
	}
	phone := record.PersonalInfo.Phone
	if len(phone) < 10 {
		t.Fatalf("phone = %q, want at least 10 digits", phone)
	}
	for _, ch := range phone {
		if ch < '0' || ch > '9' {
			t.Fatalf("phone %q contains non-digit %c", phone, ch)
		}
	}
	if record.PersonalInfo.LinkedIn != "https://linkedin.com/in/johndoe" {
		t.Fatalf("linkedin = %q", record.PersonalInfo.LinkedIn)
	}

	wantSkills := []string{"python", "sql", "docker", "pandas", "numpy", "kubernetes"}
	have := make(map[string]bool, len(record.Skills))
	for _, s := range record.Skills {
		have[strings.ToLower(s)] = true
	}
	for _, w := range wantSkills {
		if !have[w] {
			t.Fatalf("missing skill %q in %v", w, record.Skills)
		}
	}

	if len(record.Education) == 0 {
		t.Fatal("expected education entries")
	}
	if !strings.Contains(record.Education[0], "Computer Science") {
		t.Fatalf("education[0] = %q", record.Education[0])
	}

	if len(record.Experience) != 1 {
		t.Fatalf("expected 1 experience entry, got %d", len(record.Experience))
	}
	exp := record.Experience[0]
	if exp.Title != "Software Engineer" {
		t.Fatalf("title = %q", exp.Title)
	}
	if exp.Company != "Acme Corp" {
		t.Fatalf("company = %q", exp.Company)
	}
	if len(exp.Responsibilities) != 2 {
		t.Fatalf("responsibilities = %v", exp.Responsibilities)
	}
}

func TestParseEmptyInput(t *testing.T) {
	record := Parse("")

	info := record.PersonalInfo
	for field, value := range map[string]string{
		"phone":    info.Phone,
		"linkedin": info.LinkedIn,
		"github":   info.GitHub,
		"website":  info.Website,
		"location": info.Location,
		"summary":  info.Summary,
	} {
		if model.Present(value) {
			t.Fatalf("expected absent %s, got %q", field, value)
		}
	}
	if model.Present(info.Name) || model.Present(info.Email) {
		t.Fatalf("expected absent name/email, got %q / %q", info.Name, info.Email)
	}
	if len(record.Skills) != 0 || len(record.Education) != 0 || len(record.Experience) != 0 || len(record.Projects) != 0 {
		t.Fatalf("expected empty sequences, got %+v", record)
	}
}

func TestParseBinaryGarbage(t *testing.T) {
	garbage := string([]byte{0x00, 0xFF, 0x1B, 0x7F, 0x00, 0xC3, 0x28})
	record := Parse(garbage)
	if len(record.Skills) != 0 {
		t.Fatalf("expected no skills from garbage, got %v", record.Skills)
	}
}

func TestParseSkillsAreDistinct(t *testing.T) {
	record := Parse("Skills: Python, python, PYTHON, Docker, docker, SQL\n")
	seen := make(map[string]bool)
	for _, s := range record.Skills {
		key := strings.ToLower(s)
		if seen[key] {
			t.Fatalf("duplicate skill %q in %v", s, record.Skills)
		}
		seen[key] = true
	}
}

func TestParseNeverReturnsNilSlices(t *testing.T) {
	record := Parse("just some words")
	if record.Skills == nil || record.Education == nil || record.Experience == nil || record.Projects == nil {
		t.Fatalf("expected non-nil slices, got %+v", record)
	}
}
