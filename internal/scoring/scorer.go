// Package scoring computes the deterministic ATS rubric: three weighted
// sub-scores (Completeness 30, Keyword Relevance 40, Formatting 30)
// aggregated into an overall 0-100 score with a reproducible breakdown.
package scoring

import (
	"math"
	"regexp"
	"strings"

	"resume-ats/resume/model"
)

// Category point ceilings and aggregate weights.
const (
	completenessCeiling = 30
	keywordCeiling      = 40
	formatCeiling       = 30

	weightCompleteness = 0.30
	weightKeywords     = 0.40
	weightFormat       = 0.30
)

// Result is the scoring output. Breakdown is nil when an external scorer
// produced the result.
type Result struct {
	Score        int        `json:"score"`
	KeywordScore int        `json:"keyword_score"`
	FormatScore  int        `json:"format_score"`
	Suggestions  []string   `json:"suggestions"`
	Breakdown    *Breakdown `json:"breakdown,omitempty"`
}

// Breakdown exposes every criterion behind the score so history tracking
// can compare runs. It is fully determined by the input record.
type Breakdown struct {
	Weights        Weights               `json:"weights"`
	OverallFormula string                `json:"overall_formula"`
	Completeness   CompletenessBreakdown `json:"completeness"`
	Keywords       KeywordBreakdown      `json:"keywords"`
	Format         FormatBreakdown       `json:"format"`
}

// Weights lists the category point ceilings.
type Weights struct {
	Completeness int `json:"completeness"`
	Keywords     int `json:"keywords"`
	Format       int `json:"format"`
}

// CompletenessBreakdown reports the completeness category.
type CompletenessBreakdown struct {
	Points   int                  `json:"points"`
	Score    int                  `json:"score"`
	Criteria CompletenessCriteria `json:"criteria"`
}

// CompletenessCriteria holds the raw completeness signals.
type CompletenessCriteria struct {
	EmailOK           bool `json:"email_ok"`
	PhoneOK           bool `json:"phone_ok"`
	LinkOK            bool `json:"link_ok"`
	SummaryPresent    bool `json:"summary_present"`
	SkillsCount       int  `json:"skills_count"`
	EducationPresent  bool `json:"education_present"`
	ExperiencePresent bool `json:"experience_present"`
}

// KeywordBreakdown reports the keyword relevance category.
type KeywordBreakdown struct {
	RawPoints float64         `json:"raw_points"`
	Score     int             `json:"score"`
	Criteria  KeywordCriteria `json:"criteria"`
}

// KeywordCriteria holds the raw keyword signals.
type KeywordCriteria struct {
	DistinctSkills     int  `json:"distinct_skills"`
	ReuseHits          int  `json:"reuse_hits"`
	HasRoleSignal      bool `json:"has_role_signal"`
	HasSenioritySignal bool `json:"has_seniority_signal"`
}

// FormatBreakdown reports the formatting/readability category.
type FormatBreakdown struct {
	RawPoints int            `json:"raw_points"`
	Score     int            `json:"score"`
	Criteria  FormatCriteria `json:"criteria"`
}

// FormatCriteria holds the raw formatting signals.
type FormatCriteria struct {
	BulletLines            int  `json:"bullet_lines"`
	ActionVerbHits         int  `json:"action_verb_hits"`
	QuantifiedHits         int  `json:"quantified_hits"`
	DateEntriesWithMatch   int  `json:"date_entries_with_match"`
	TotalExperienceEntries int  `json:"total_experience_entries"`
	LinksPresent           bool `json:"links_present"`
}

var actionVerbs = []string{
	"led", "built", "developed", "designed", "implemented", "owned", "improved", "reduced", "increased",
	"optimized", "launched", "created", "automated", "migrated", "analyzed", "architected", "delivered", "managed",
}

var (
	scoreEmailRe     = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	tenDigitRe       = regexp.MustCompile(`\d{10}`)
	quantifiedRe     = regexp.MustCompile(`\b\d+\b|%|x\b`)
	consistentDateRe = regexp.MustCompile(`\b\d{4}\b|\b[A-Za-z]{3,9}\s*\d{4}\b`)
	actionVerbRes    = compileVerbRes(actionVerbs)
	roleTokens       = []string{"engineer", "developer", "analyst", "scientist", "manager", "intern"}
	seniorityTokens  = []string{"senior", "lead", "principal"}
)

func compileVerbRes(verbs []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(verbs))
	for i, v := range verbs {
		out[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(v) + `\b`)
	}
	return out
}

// Score applies the local deterministic rubric. It is a pure function:
// identical records yield identical results, including the breakdown.
func Score(record model.ResumeRecord) Result {
	record = record.Normalize()
	info := record.PersonalInfo
	combined := strings.ToLower(combinedText(record))

	// Completeness: contact reachability, then one point block per
	// populated section. Projects intentionally contribute nothing.
	emailOK := scoreEmailRe.MatchString(info.Email)
	phoneOK := tenDigitRe.MatchString(info.Phone)
	linkOK := info.HasLink()
	summaryOK := model.Present(info.Summary)

	completeness := 0
	if emailOK && (phoneOK || linkOK) {
		completeness += 8
	}
	if summaryOK {
		completeness += 6
	}
	if len(record.Skills) >= 8 {
		completeness += 6
	}
	if len(record.Education) > 0 {
		completeness += 5
	}
	if len(record.Experience) > 0 {
		completeness += 5
	}

	// Keyword relevance: skill richness, reuse of skills in free text,
	// and role/seniority signals in job titles.
	uniqSkills := distinctLower(record.Skills)
	reuseHits := 0
	for _, s := range uniqSkills {
		if s != "" && strings.Contains(combined, s) {
			reuseHits++
		}
	}
	titles := make([]string, len(record.Experience))
	for i, job := range record.Experience {
		titles[i] = job.Title
	}
	titleText := strings.ToLower(strings.Join(titles, " "))
	hasRole := containsAny(titleText, roleTokens)
	hasSeniority := containsAny(titleText, seniorityTokens)

	kwPoints := math.Min(20, float64(len(uniqSkills))*1.25)
	kwPoints += math.Min(15, float64(reuseHits)*0.8)
	if hasRole {
		kwPoints += 3
	}
	if hasSeniority {
		kwPoints += 2
	}
	keywordScore := rescale(kwPoints, keywordCeiling)

	// Formatting/readability.
	bulletLines := 0
	for _, job := range record.Experience {
		for _, b := range job.Responsibilities {
			if len(b) >= 20 {
				bulletLines++
			}
		}
	}
	verbHits := 0
	for _, re := range actionVerbRes {
		if re.MatchString(combined) {
			verbHits++
		}
	}
	quantHits := len(quantifiedRe.FindAllString(combined, -1))
	dateOK := 0
	for _, job := range record.Experience {
		if consistentDateRe.MatchString(job.Dates) {
			dateOK++
		}
	}

	format := 0
	switch {
	case bulletLines >= 5:
		format += 8
	case bulletLines >= 2:
		format += 5
	}
	format += minInt(8, verbHits)
	switch {
	case quantHits >= 6:
		format += 7
	case quantHits >= 3:
		format += 5
	case quantHits >= 1:
		format += 3
	}
	if n := len(record.Experience); n > 0 && dateOK == n {
		format += 5
	} else if dateOK >= maxInt(1, len(record.Experience)/2) {
		format += 3
	}
	linksPresent := model.Present(info.LinkedIn) || model.Present(info.GitHub)
	if linksPresent {
		format += 2
	}
	formatScore := rescale(float64(format), formatCeiling)

	completenessScore := rescale(float64(completeness), completenessCeiling)
	overall := clamp(int(math.Round(
		weightCompleteness*float64(completenessScore) +
			weightKeywords*float64(keywordScore) +
			weightFormat*float64(formatScore))))

	suggestions := buildSuggestions(record, suggestionInputs{
		summaryOK:   summaryOK,
		bulletLines: bulletLines,
		verbHits:    verbHits,
		quantHits:   quantHits,
		dateOK:      dateOK,
		linkedinOK:  model.Present(info.LinkedIn),
		githubOK:    model.Present(info.GitHub),
	})

	return Result{
		Score:        overall,
		KeywordScore: keywordScore,
		FormatScore:  formatScore,
		Suggestions:  suggestions,
		Breakdown: &Breakdown{
			Weights:        Weights{Completeness: completenessCeiling, Keywords: keywordCeiling, Format: formatCeiling},
			OverallFormula: "0.30*completeness + 0.40*keywords + 0.30*format",
			Completeness: CompletenessBreakdown{
				Points: completeness,
				Score:  completenessScore,
				Criteria: CompletenessCriteria{
					EmailOK:           emailOK,
					PhoneOK:           phoneOK,
					LinkOK:            linkOK,
					SummaryPresent:    summaryOK,
					SkillsCount:       len(record.Skills),
					EducationPresent:  len(record.Education) > 0,
					ExperiencePresent: len(record.Experience) > 0,
				},
			},
			Keywords: KeywordBreakdown{
				RawPoints: kwPoints,
				Score:     keywordScore,
				Criteria: KeywordCriteria{
					DistinctSkills:     len(uniqSkills),
					ReuseHits:          reuseHits,
					HasRoleSignal:      hasRole,
					HasSenioritySignal: hasSeniority,
				},
			},
			Format: FormatBreakdown{
				RawPoints: format,
				Score:     formatScore,
				Criteria: FormatCriteria{
					BulletLines:            bulletLines,
					ActionVerbHits:         verbHits,
					QuantifiedHits:         quantHits,
					DateEntriesWithMatch:   dateOK,
					TotalExperienceEntries: len(record.Experience),
					LinksPresent:           linksPresent,
				},
			},
		},
	}
}

type suggestionInputs struct {
	summaryOK   bool
	bulletLines int
	verbHits    int
	quantHits   int
	dateOK      int
	linkedinOK  bool
	githubOK    bool
}

// buildSuggestions derives the fixed-priority suggestion list from the raw
// criterion values, never from the rescaled percentages.
func buildSuggestions(record model.ResumeRecord, in suggestionInputs) []string {
	suggestions := []string{}
	if !in.summaryOK {
		suggestions = append(suggestions, "Add a concise professional summary with role-relevant keywords.")
	}
	if len(record.Skills) < 10 {
		suggestions = append(suggestions, "Add more role-relevant skills (target 10–20 distinct skills).")
	}
	if len(record.Experience) == 0 {
		suggestions = append(suggestions, "Provide at least one experience entry with measurable, impact-focused bullets.")
	} else {
		if in.bulletLines < 5 {
			suggestions = append(suggestions, "Increase bullet points per role (aim for 4–6 strong bullets).")
		}
		if in.verbHits < 4 {
			suggestions = append(suggestions, "Start bullets with strong action verbs (e.g., Led, Built, Optimized, Delivered).")
		}
		if in.quantHits < 3 {
			suggestions = append(suggestions, "Quantify impact with numbers, % or multipliers where possible.")
		}
		if in.dateOK < len(record.Experience) {
			suggestions = append(suggestions, "Normalize date formats across roles (e.g., Jan 2023 – Present).")
		}
	}
	if !in.linkedinOK && !in.githubOK {
		suggestions = append(suggestions, "Include a LinkedIn and/or GitHub link for recruiter context.")
	}
	if len(record.Education) > 0 {
		first := record.Education[0]
		if !strings.Contains(first, "-") && !strings.Contains(first, "202") {
			suggestions = append(suggestions, "Normalize education entries with degree, institution, and graduation year.")
		}
	}
	return suggestions
}

func combinedText(record model.ResumeRecord) string {
	blobs := []string{}
	if model.Present(record.PersonalInfo.Summary) {
		blobs = append(blobs, record.PersonalInfo.Summary)
	}
	for _, job := range record.Experience {
		blobs = append(blobs, strings.Join([]string{job.Title, job.Company, job.Dates}, " "))
		blobs = append(blobs, job.Responsibilities...)
	}
	for _, p := range record.Projects {
		blobs = append(blobs, strings.Join([]string{p.Name, p.Description, p.Technologies}, " "))
	}
	return strings.Join(blobs, "\n")
}

func distinctLower(skills []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		key := strings.TrimSpace(strings.ToLower(s))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	return out
}

func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// rescale converts raw category points to a clamped 0-100 integer.
func rescale(points float64, ceiling int) int {
	return clamp(int(math.Round(points / float64(ceiling) * 100)))
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
