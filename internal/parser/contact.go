package parser

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Relaxed phone shape: optional country code, optional grouped prefix,
	// then digit groups with common separators.
	phoneCandidateRe = regexp.MustCompile(`(?:\+\d{1,3}[-\s.]*)?(?:\(?\d{2,4}\)?[-\s.]*)?\d{3,4}[-\s.]*\d{4,6}`)
	nonDigitRe       = regexp.MustCompile(`\D`)
)

var phoneLabels = []string{"phone", "mobile", "contact", "tel", "whatsapp"}

// extractEmail returns the first email-looking token in document order.
func extractEmail(text string) string {
	return emailRe.FindString(text)
}

// extractPhone picks a phone number among digit sequences that could also
// be dates or zip codes. Emails are scrubbed first so their digits cannot
// collide; candidates on lines carrying a label token win over unlabeled
// ones. The chosen candidate is returned as its bare digit string.
func extractPhone(text string) string {
	scrubbed := emailRe.ReplaceAllString(text, " ")

	var labeled, unlabeled []string
	for _, line := range splitLines(scrubbed) {
		if isBlank(line) {
			continue
		}
		lower := strings.ToLower(line)
		hasLabel := false
		for _, label := range phoneLabels {
			if strings.Contains(lower, label) {
				hasLabel = true
				break
			}
		}
		for _, cand := range phoneCandidateRe.FindAllString(line, -1) {
			digits := nonDigitRe.ReplaceAllString(cand, "")
			if len(digits) < 10 || len(digits) > 15 {
				continue
			}
			if hasLabel {
				labeled = append(labeled, digits)
			} else {
				unlabeled = append(unlabeled, digits)
			}
		}
	}

	if len(labeled) > 0 {
		return labeled[0]
	}
	if len(unlabeled) > 0 {
		return unlabeled[0]
	}
	return ""
}

var nameSkipMarkers = []string{"email", "phone", "linkedin", "github", "www.", "@", "resume", "curriculum", "vitae"}

// extractName scans the first 10 non-empty lines for a short line free of
// contact and document markers. Names are almost always the first
// substantive line; this avoids misreading a header or contact line.
func extractName(text string) string {
	seen := 0
	for _, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > 10 {
			break
		}
		lower := strings.ToLower(line)
		skip := false
		for _, marker := range nameSkipMarkers {
			if strings.Contains(lower, marker) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		if tokens := strings.Fields(line); len(tokens) >= 1 && len(tokens) <= 5 {
			return line
		}
	}
	return ""
}
