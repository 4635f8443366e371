package parser

import (
	"regexp"
	"strings"

	"resume-ats/resume/model"
)

var experienceSectionNames = []string{
	"professional experience", "work experience", "experience", "employment",
}

// expDateRe matches day-month-year, month-year, year ranges (optionally
// ending in Present) and bare years.
var expDateRe = regexp.MustCompile(`\b\d{1,2}\s*[A-Za-z]{3,9}\s*\d{4}\b|\b[A-Za-z]{3,9}\s*\d{4}\b|\b\d{4}\s*[-–]\s*(?:Present|\d{4})\b|\b\d{4}\b`)

func hasDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

// extractExperience walks the experience section line by line. A blank line
// flushes the current entry once it has a title; a date-looking line fills
// dates; a bullet line becomes a responsibility; anything else fills title
// first (digit-free lines only), then company. This single pass tolerates
// noisy input instead of attempting a grammar.
func extractExperience(text string) []model.Experience {
	body, ok := experienceSection(splitLines(text))
	if !ok {
		return []model.Experience{}
	}

	jobs := []model.Experience{}
	current := newJob()
	flush := func() {
		if current.Title != "" {
			jobs = append(jobs, current)
			current = newJob()
		}
	}

	for _, raw := range body {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			flush()
		case expDateRe.MatchString(line):
			current.Dates = line
		case strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*"):
			current.Responsibilities = append(current.Responsibilities, strings.TrimLeft(line, "•-* "))
		case current.Title == "" && !hasDigit(line):
			current.Title = line
		case current.Company == "":
			current.Company = line
		}
	}
	flush()
	return jobs
}

func newJob() model.Experience {
	return model.Experience{Responsibilities: []string{}}
}

// experienceSection spans blank lines, since blank lines separate entries
// within the section; it ends only at a blank line directly followed by
// another named section header, or at end of input.
func experienceSection(lines []string) ([]string, bool) {
	for i, line := range lines {
		if _, ok := headerRemainder(line, experienceSectionNames); !ok {
			continue
		}
		var body []string
		for j := i + 1; j < len(lines); j++ {
			if isBlank(lines[j]) && j+1 < len(lines) && startsWithWord(lines[j+1], "education", "skills", "projects") {
				break
			}
			body = append(body, lines[j])
		}
		return body, true
	}
	return nil, false
}
