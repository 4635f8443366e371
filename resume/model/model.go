package model

import "strings"

// NotFound is the sentinel the parser stores for a personal-info field it
// could not detect. Treated the same as "" everywhere downstream.
const NotFound = "Not found"

// ResumeRecord is the canonical structured resume. It is immutable by
// convention after assembly: scoring and enhancement always work on copies
// and return fresh values.
type ResumeRecord struct {
	PersonalInfo PersonalInfo `json:"personal_info"`
	Skills       []string     `json:"skills"`
	Education    []string     `json:"education"`
	Experience   []Experience `json:"experience"`
	Projects     []Project    `json:"projects"`
}

// PersonalInfo holds contact and identity fields. Every field is always
// present; "" or NotFound means absent, never null.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
	Location string `json:"location"`
	Summary  string `json:"summary"`
}

// Experience is one job entry. Responsibilities preserve source line order.
type Experience struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Dates            string   `json:"dates"`
	Responsibilities []string `json:"responsibilities"`
}

// Project is one project entry.
type Project struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
}

// Empty returns a complete record with every sequence initialized, suitable
// as the result of parsing unusable input.
func Empty() ResumeRecord {
	return ResumeRecord{
		Skills:     []string{},
		Education:  []string{},
		Experience: []Experience{},
		Projects:   []Project{},
	}
}

// Present reports whether a personal-info value is set, treating the
// NotFound sentinel as absent.
func Present(value string) bool {
	trimmed := strings.TrimSpace(value)
	return trimmed != "" && trimmed != NotFound
}

// HasLink reports whether any professional link is set.
func (p PersonalInfo) HasLink() bool {
	return Present(p.LinkedIn) || Present(p.GitHub) || Present(p.Website)
}

// Clone returns a deep copy. Enhancement derives a new record from the copy
// so before/after comparison sees independent snapshots.
func (r ResumeRecord) Clone() ResumeRecord {
	out := r
	out.Skills = append([]string{}, r.Skills...)
	out.Education = append([]string{}, r.Education...)
	out.Experience = make([]Experience, len(r.Experience))
	for i, job := range r.Experience {
		clone := job
		clone.Responsibilities = append([]string{}, job.Responsibilities...)
		out.Experience[i] = clone
	}
	out.Projects = append([]Project{}, r.Projects...)
	return out
}

// Normalize replaces nil sequences with empty ones after a JSON decode so
// the always-present invariant holds for hand-built payloads too.
func (r ResumeRecord) Normalize() ResumeRecord {
	out := r
	if out.Skills == nil {
		out.Skills = []string{}
	}
	if out.Education == nil {
		out.Education = []string{}
	}
	experience := make([]Experience, len(r.Experience))
	copy(experience, r.Experience)
	for i := range experience {
		if experience[i].Responsibilities == nil {
			experience[i].Responsibilities = []string{}
		}
	}
	out.Experience = experience
	if out.Projects == nil {
		out.Projects = []Project{}
	}
	return out
}
