// Package parser turns unstructured resume text into the canonical
// ResumeRecord. Every extractor is a pure function over the raw text;
// a field that cannot be found degrades to an explicit absent value,
// never an error.
package parser

import "resume-ats/resume/model"

// Parser assembles extractor output into one record. The zero value is
// usable; Recognizer is an optional enrichment capability.
type Parser struct {
	Recognizer EntityRecognizer
}

// New returns a Parser without entity recognition.
func New() *Parser {
	return &Parser{Recognizer: NopRecognizer{}}
}

// Parse extracts a complete ResumeRecord from raw text. It never fails:
// empty or adversarial input yields a record with every field absent.
func (p *Parser) Parse(text string) model.ResumeRecord {
	text = normalizeNewlines(text)

	record := model.Empty()
	record.PersonalInfo = model.PersonalInfo{
		Name:  model.NotFound,
		Email: model.NotFound,
	}

	if name := extractName(text); name != "" {
		record.PersonalInfo.Name = name
	}
	if email := extractEmail(text); email != "" {
		record.PersonalInfo.Email = email
	}
	record.PersonalInfo.Phone = extractPhone(text)
	record.PersonalInfo.LinkedIn, record.PersonalInfo.GitHub, record.PersonalInfo.Website = extractLinks(text)
	record.Skills = extractSkills(text)
	record.Education = extractEducation(text)
	record.Experience = extractExperience(text)
	record.Projects = extractProjects(text)

	enrich(text, p.Recognizer, &record)
	return record
}

// Parse extracts a ResumeRecord using the default Parser.
func Parse(text string) model.ResumeRecord {
	return New().Parse(text)
}
