package parser

import (
	"regexp"
	"strings"
	"unicode"
)

const maxExtractedSkills = 50

// skillKeywords is the fixed vocabulary matched anywhere in the document,
// independent of a Skills section being present.
var skillKeywords = []string{
	"python", "java", "javascript", "c++", "c#", "ruby", "php", "swift", "kotlin",
	"react", "angular", "vue", "node.js", "express", "django", "flask", "spring",
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "git",
	"machine learning", "deep learning", "nlp", "computer vision", "data science",
	"tensorflow", "pytorch", "scikit-learn", "pandas", "numpy",
	"html", "css", "bootstrap", "tailwind", "sass",
	"agile", "scrum", "devops", "ci/cd", "microservices", "rest api", "graphql",
}

var skillsSectionNames = []string{"technical skills", "technical skill", "core competencies", "skills", "skill"}

var (
	skillTokenSplitRe = regexp.MustCompile(`[\n,;|•]+`)
	skillNoiseWordRe  = regexp.MustCompile(`(?i)\b(?:skills?|technical|core|competencies)\b`)
	multiSpaceRe      = regexp.MustCompile(`\s+`)
)

// extractSkills merges a whole-document keyword scan with a labeled Skills
// section pass, deduplicates case-insensitively preserving first occurrence,
// and caps the result at 50.
func extractSkills(text string) []string {
	var found []string
	lower := strings.ToLower(text)
	for _, kw := range skillKeywords {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}

	body, ok := findSection(splitLines(text), skillsSectionNames, func(line string) bool {
		return isBlank(line) || startsWithWord(line, "education", "projects", "experience")
	})
	if ok {
		for _, tok := range skillTokenSplitRe.Split(strings.Join(body, "\n"), -1) {
			t := cleanSkillToken(tok)
			if t == "" || len(t) > 40 {
				continue
			}
			// Tokens over 4 words are almost certainly captured prose.
			if len(strings.Fields(t)) > 4 {
				continue
			}
			found = append(found, t)
		}
	}

	seen := map[string]bool{}
	uniq := make([]string, 0, len(found))
	for _, s := range found {
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		uniq = append(uniq, s)
		if len(uniq) == maxExtractedSkills {
			break
		}
	}

	out := make([]string, len(uniq))
	for i, s := range uniq {
		if isUpperToken(s) {
			out[i] = s
		} else {
			out[i] = titleCase(s)
		}
	}
	return out
}

func cleanSkillToken(tok string) string {
	t := strings.TrimSpace(tok)
	t = strings.Trim(t, "•-*|,:;")
	t = strings.TrimSpace(t)
	t = skillNoiseWordRe.ReplaceAllString(t, "")
	t = strings.TrimSpace(t)
	return multiSpaceRe.ReplaceAllString(t, " ")
}

// isUpperToken reports whether the token reads as an acronym: at least one
// letter and no lowercase ones.
func isUpperToken(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// titleCase uppercases the first letter of every letter run and lowercases
// the rest, so "machine learning" becomes "Machine Learning" and "node.js"
// becomes "Node.Js".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
