package parser

import (
	"regexp"
	"strings"

	"resume-ats/resume/model"
)

// Entity is a recognized span of text with a coarse label.
type Entity struct {
	Label string
	Text  string
}

// Entity labels understood by the enrichment pass.
const (
	EntityPerson   = "PERSON"
	EntityGeo      = "GPE"
	EntityLocation = "LOC"
)

// EntityRecognizer is an optional capability for name/location detection.
// Extraction must produce complete results without one; a recognizer only
// fills fields the pattern extractors left absent.
type EntityRecognizer interface {
	Entities(text string) []Entity
}

// NopRecognizer is the null recognizer used when no real one is available.
type NopRecognizer struct{}

// Entities always returns nothing.
func (NopRecognizer) Entities(string) []Entity { return nil }

const enrichWindow = 2000

var (
	locationLabelRe = regexp.MustCompile(`(?i)\b(?:location|based in|residing in|address)\b\s*[:\-]?\s*(.+)`)
	cityPairRe      = regexp.MustCompile(`\b([A-Za-z .]+,\s*[A-Za-z .]+)\b`)
)

// enrich applies best-effort name and location detection. It never
// overwrites a field the primary extractors already populated.
func enrich(text string, rec EntityRecognizer, record *model.ResumeRecord) {
	info := &record.PersonalInfo

	if rec != nil {
		window := text
		if len(window) > enrichWindow {
			window = window[:enrichWindow]
		}
		entities := rec.Entities(window)
		if !model.Present(info.Name) {
			for _, ent := range entities {
				if ent.Label != EntityPerson {
					continue
				}
				if n := len(strings.Fields(ent.Text)); n >= 2 && n <= 5 {
					info.Name = ent.Text
					break
				}
			}
		}
		if !model.Present(info.Location) {
			for _, ent := range entities {
				if ent.Label == EntityGeo || ent.Label == EntityLocation {
					info.Location = ent.Text
					break
				}
			}
		}
	}

	if !model.Present(info.Location) {
		if m := locationLabelRe.FindStringSubmatch(text); m != nil {
			loc := strings.TrimSpace(m[1])
			loc = strings.TrimRight(loc, ",")
			info.Location = strings.TrimSpace(loc)
		}
	}
	if !model.Present(info.Location) {
		if m := cityPairRe.FindStringSubmatch(text); m != nil && len(m[1]) <= 40 {
			info.Location = strings.TrimSpace(m[1])
		}
	}
}
