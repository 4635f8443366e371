package parser

import "strings"

// Section layout in resume text is signaled by short header lines
// ("Skills:", "Work Experience"). RE2 has no lookahead, so instead of one
// big regex per section the extractors share a line scanner: locate the
// header, then collect body lines until that section's stop condition.

func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

func splitLines(text string) []string {
	return strings.Split(normalizeNewlines(text), "\n")
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// headerRemainder reports whether the line is a header for one of the given
// names and returns any inline content following it ("Skills: Go, SQL"
// yields "Go, SQL"). Names must be lowercase; longer names should be listed
// first so "technical skills" wins over "skills".
func headerRemainder(line string, names []string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	lower := strings.ToLower(trimmed)
	for _, name := range names {
		if !strings.HasPrefix(lower, name) {
			continue
		}
		rest := trimmed[len(name):]
		if rest == "" {
			return "", true
		}
		r := rest[0]
		if r != ':' && r != '-' && r != ' ' && r != '\t' {
			continue
		}
		return strings.TrimSpace(strings.TrimLeft(rest, ":- \t")), true
	}
	return "", false
}

// startsWithWord reports whether the trimmed line begins with one of the
// given lowercase words at a word boundary ("Experienced" does not start
// the word "experience").
func startsWithWord(line string, words ...string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	for _, w := range words {
		if !strings.HasPrefix(lower, w) {
			continue
		}
		if len(lower) == len(w) {
			return true
		}
		next := lower[len(w)]
		if !isWordByte(next) {
			return true
		}
	}
	return false
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

// findSection returns the body lines of the first section whose header
// matches names. Collection starts with any inline remainder on the header
// line and runs until stop returns true for a line (the stopping line is
// excluded) or the lines run out.
func findSection(lines []string, names []string, stop func(line string) bool) ([]string, bool) {
	for i, line := range lines {
		rest, ok := headerRemainder(line, names)
		if !ok {
			continue
		}
		var body []string
		if rest != "" {
			body = append(body, rest)
		}
		for j := i + 1; j < len(lines); j++ {
			if stop(lines[j]) {
				break
			}
			body = append(body, lines[j])
		}
		return body, true
	}
	return nil, false
}
