package parser

import (
	"regexp"
	"strings"
)

var (
	schemeURLRe  = regexp.MustCompile(`https?://[^\s)]+`)
	bareDomainRe = regexp.MustCompile(`\b(?:www\.)?[a-zA-Z0-9-]+\.(?:com|io|ai|dev|net|org)(?:/[^\s)]*)?`)

	linkedinPathRe  = regexp.MustCompile(`\b(in/[\w\-]+)\b`)
	linkedinLabelRe = regexp.MustCompile(`(?i)linkedin\s*[:\-]?\s*([\w\-/]+)`)
	githubLabelRe   = regexp.MustCompile(`(?i)github\s*[:\-]?\s*([\w\-/]+)`)
)

// mailProviderDomains are excluded from website detection so an email host
// is not mistaken for a personal site.
var mailProviderDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "proton.me"}

// extractLinks classifies LinkedIn, GitHub and personal website URLs.
// Scheme-qualified URLs and bare domain tokens are collected in document
// order; bare LinkedIn/GitHub handles are resolved through labeled-line
// fallbacks.
func extractLinks(text string) (linkedin, github, website string) {
	var urls []string
	seen := map[string]bool{}
	add := func(raw string) {
		cleaned := strings.Trim(raw, ").,;")
		if cleaned == "" || seen[cleaned] {
			return
		}
		seen[cleaned] = true
		urls = append(urls, cleaned)
	}
	for _, m := range schemeURLRe.FindAllString(text, -1) {
		add(m)
	}
	for _, m := range bareDomainRe.FindAllString(text, -1) {
		add(m)
	}

	for _, url := range urls {
		low := strings.ToLower(url)
		normalized := url
		if !strings.HasPrefix(low, "http") {
			normalized = "https://" + low
		}
		switch {
		case strings.Contains(low, "linkedin.com"):
			if linkedin == "" {
				linkedin = normalized
			}
		case strings.Contains(low, "github.com"):
			if github == "" {
				github = normalized
			}
		}
	}

	// Bare profile path like "in/username" without the domain.
	if linkedin == "" {
		if m := linkedinPathRe.FindStringSubmatch(text); m != nil {
			linkedin = "https://www.linkedin.com/" + m[1]
		}
	}

	// Labeled handle like "LinkedIn: someuser"; handles without a path
	// prefix are assumed to be profile slugs.
	if linkedin == "" {
		if m := linkedinLabelRe.FindStringSubmatch(text); m != nil {
			handle := strings.Trim(strings.TrimSpace(m[1]), ".")
			switch {
			case strings.HasPrefix(handle, "http"):
				linkedin = handle
			case strings.HasPrefix(handle, "in/") || strings.HasPrefix(handle, "company/"):
				linkedin = "https://www.linkedin.com/" + handle
			default:
				linkedin = "https://www.linkedin.com/in/" + handle
			}
		}
	}

	if github == "" {
		if m := githubLabelRe.FindStringSubmatch(text); m != nil {
			handle := strings.Trim(strings.TrimSpace(m[1]), ".")
			if strings.HasPrefix(handle, "http") {
				github = handle
			} else {
				github = "https://github.com/" + strings.TrimLeft(handle, "/")
			}
		}
	}

	for _, url := range urls {
		low := strings.ToLower(url)
		if strings.Contains(low, "linkedin.com") || strings.Contains(low, "github.com") || strings.Contains(low, "mailto:") {
			continue
		}
		excluded := false
		for _, dom := range mailProviderDomains {
			if strings.Contains(low, dom) {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}
		if strings.HasPrefix(low, "http") {
			website = url
		} else {
			website = "https://" + low
		}
		break
	}

	return linkedin, github, website
}
