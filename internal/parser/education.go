package parser

import (
	"regexp"
	"strings"
)

var educationSectionNames = []string{"education", "academic background"}

// degreeRes flag a buffered education line as a complete entry. Entries have
// no fixed schema; a degree keyword or a 4-digit year is the flush signal.
var degreeRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bachelor(?:'s)?(?:\s+of)?(?:\s+science)?(?:\s+in)?`),
	regexp.MustCompile(`(?i)master(?:'s)?(?:\s+of)?(?:\s+science)?(?:\s+in)?`),
	regexp.MustCompile(`(?i)phd`),
	regexp.MustCompile(`(?i)ph\.d\.`),
	regexp.MustCompile(`(?i)doctorate`),
	regexp.MustCompile(`(?i)associate(?:'s)?(?:\s+of)?`),
	regexp.MustCompile(`(?i)b\.s\.`),
	regexp.MustCompile(`(?i)b\.a\.`),
	regexp.MustCompile(`(?i)m\.s\.`),
	regexp.MustCompile(`(?i)m\.a\.`),
	regexp.MustCompile(`(?i)mba`),
}

var yearRe = regexp.MustCompile(`\b\d{4}\b`)

// extractEducation accumulates section lines into a running buffer and
// flushes one entry whenever the buffer carries a degree keyword or a year,
// letting multi-line entries collapse into a single string.
func extractEducation(text string) []string {
	body, ok := findSection(splitLines(text), educationSectionNames, func(line string) bool {
		return isBlank(line) || startsWithWord(line, "experience", "work experience", "skills", "projects")
	})
	if !ok {
		return []string{}
	}

	education := []string{}
	buffer := ""
	for _, line := range body {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		buffer += line + " "
		if hasDegreeKeyword(buffer) || yearRe.MatchString(buffer) {
			education = append(education, strings.TrimSpace(buffer))
			buffer = ""
		}
	}
	if buffer != "" {
		education = append(education, strings.TrimSpace(buffer))
	}
	return education
}

func hasDegreeKeyword(s string) bool {
	for _, re := range degreeRes {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
