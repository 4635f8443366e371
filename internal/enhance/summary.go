package enhance

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"resume-ats/resume/model"
)

// timeNow is swapped in tests so tenure math stays deterministic.
var timeNow = time.Now

var (
	dateRangeRe   = regexp.MustCompile(`([A-Za-z]{3,9}\s+\d{4}|\d{4})\s*[–-]\s*(Present|[A-Za-z]{3,9}\s+\d{4}|\d{4})`)
	achievementRe = regexp.MustCompile(`(?i)\b\d+\b|%|\bx\b`)
	dateLayouts   = []string{"Jan 2006", "January 2006", "2006"}
)

// enhanceSummary returns the summary the enhanced record should carry:
// synthesized when empty, verbatim when it reads as authored prose, and
// role-prefixed otherwise.
func enhanceSummary(record model.ResumeRecord, targetRole string, level Level) string {
	summary := strings.TrimSpace(record.PersonalInfo.Summary)
	if !model.Present(summary) {
		return generateSummary(record, targetRole)
	}

	if readsAsProse(summary) {
		return summary
	}
	if targetRole == "" {
		return summary
	}

	switch level {
	case LevelAggressive:
		return targetRole + " known for driving measurable outcomes. " + summary
	case LevelConservative:
		return targetRole + ". " + summary
	default:
		return targetRole + " — " + summary
	}
}

// readsAsProse guards human-authored summaries: more than six words and
// either sentence-final punctuation or internal clause separators.
func readsAsProse(summary string) bool {
	if len(strings.Fields(summary)) <= 6 {
		return false
	}
	return strings.HasSuffix(summary, ".") || strings.ContainsAny(summary, ";,")
}

// generateSummary synthesizes a summary from role, tenure, skills, and
// quantified achievements, omitting clauses with no source data.
func generateSummary(record model.ResumeRecord, targetRole string) string {
	role := inferRole(record, targetRole)
	years := totalYears(record.Experience)
	skills := summarySkills(record.Skills, role)
	achievements := notableAchievements(record.Experience)

	var b strings.Builder
	if years > 0 {
		fmt.Fprintf(&b, "%s with %d+ years of experience.", role, years)
	} else {
		fmt.Fprintf(&b, "%s with experience in the industry.", role)
	}
	if len(skills) > 0 {
		b.WriteString(" Expertise in " + joinOxford(skills) + ".")
	}
	switch len(achievements) {
	case 1:
		b.WriteString(" Notable achievement: " + achievements[0] + ".")
	case 2:
		b.WriteString(" Notable achievements: " + achievements[0] + "; " + achievements[1] + ".")
	}
	return b.String()
}

// inferRole picks the explicit target role, else the longest experience
// title, else a generic label.
func inferRole(record model.ResumeRecord, targetRole string) string {
	if strings.TrimSpace(targetRole) != "" {
		return strings.TrimSpace(targetRole)
	}
	titles := make([]string, 0, len(record.Experience))
	for _, exp := range record.Experience {
		if t := strings.TrimSpace(exp.Title); t != "" {
			titles = append(titles, t)
		}
	}
	if len(titles) == 0 {
		return "Professional"
	}
	sort.SliceStable(titles, func(i, j int) bool {
		if len(titles[i]) != len(titles[j]) {
			return len(titles[i]) > len(titles[j])
		}
		return strings.ToLower(titles[i]) < strings.ToLower(titles[j])
	})
	return titles[0]
}

// totalYears sums whole months across every parsable date range and
// converts to whole years.
func totalYears(experience []model.Experience) int {
	months := 0
	now := timeNow()
	for _, exp := range experience {
		m := dateRangeRe.FindStringSubmatch(exp.Dates)
		if m == nil {
			continue
		}
		start, ok := parseMonth(m[1])
		if !ok {
			continue
		}
		var end time.Time
		if strings.EqualFold(m[2], "Present") {
			end = now
		} else {
			end, ok = parseMonth(m[2])
			if !ok {
				continue
			}
		}
		span := int(end.Year()-start.Year())*12 + int(end.Month()-start.Month())
		if span > 0 {
			months += span
		}
	}
	return (months + 6) / 12
}

func parseMonth(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// summarySkills selects up to 8 deduplicated skills, preferring ones that
// mention the role's first word.
func summarySkills(skills []string, role string) []string {
	roleWord := ""
	if fields := strings.Fields(strings.ToLower(role)); len(fields) > 0 {
		roleWord = fields[0]
	}

	seen := make(map[string]bool, len(skills))
	preferred := make([]string, 0, 8)
	rest := make([]string, 0, 8)
	for _, s := range skills {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if roleWord != "" && strings.Contains(key, roleWord) {
			preferred = append(preferred, strings.TrimSpace(s))
		} else {
			rest = append(rest, strings.TrimSpace(s))
		}
	}

	picked := append(preferred, rest...)
	if len(picked) > 8 {
		picked = picked[:8]
	}
	return picked
}

// notableAchievements returns up to 2 responsibility lines carrying a
// quantified token.
func notableAchievements(experience []model.Experience) []string {
	out := make([]string, 0, 2)
	for _, exp := range experience {
		for _, line := range exp.Responsibilities {
			line = strings.TrimSpace(strings.TrimRight(line, "."))
			if line == "" || !achievementRe.MatchString(line) {
				continue
			}
			out = append(out, line)
			if len(out) == 2 {
				return out
			}
		}
	}
	return out
}

func joinOxford(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
