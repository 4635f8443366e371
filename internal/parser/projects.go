package parser

import (
	"regexp"
	"strings"

	"resume-ats/resume/model"
)

var projectSectionNames = []string{"personal projects", "personal project", "projects", "project"}

var projectTechRe = regexp.MustCompile(`(?i)(?:tech|technologies|stack)\s*[:\-]\s*(.+)`)

// extractProjects splits the projects section into blank-line-delimited
// blocks: first line is the name, second the description, and a
// "tech/technologies/stack:" line anywhere in the block supplies the
// technologies.
func extractProjects(text string) []model.Project {
	body, ok := findSection(splitLines(text), projectSectionNames, func(line string) bool {
		return startsWithWord(line, "experience", "education", "skills")
	})
	if !ok {
		return []model.Project{}
	}

	projects := []model.Project{}
	for _, block := range splitBlocks(body) {
		lines := make([]string, 0, len(block))
		for _, l := range block {
			if t := strings.TrimSpace(l); t != "" {
				lines = append(lines, t)
			}
		}
		if len(lines) == 0 {
			continue
		}
		p := model.Project{Name: lines[0]}
		if len(lines) > 1 {
			p.Description = lines[1]
		}
		if m := projectTechRe.FindStringSubmatch(strings.Join(block, "\n")); m != nil {
			p.Technologies = strings.TrimSpace(m[1])
		}
		projects = append(projects, p)
	}
	return projects
}

func splitBlocks(lines []string) [][]string {
	var blocks [][]string
	var current []string
	for _, line := range lines {
		if isBlank(line) {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}
