package enhance

import (
	"fmt"
	"sort"
	"strings"

	"resume-ats/resume/model"
)

// buildLog reports what changed between the original and enhanced records,
// in a fixed order: summary, skills, responsibility lines.
func buildLog(before, after model.ResumeRecord) []string {
	changes := make([]string, 0, 4)

	if strings.TrimSpace(before.PersonalInfo.Summary) != strings.TrimSpace(after.PersonalInfo.Summary) {
		changes = append(changes, "Updated professional summary")
	}

	added, removed := skillDiff(before.Skills, after.Skills)
	if len(added) > 0 {
		changes = append(changes, "Added skills: "+strings.Join(capList(added, 10), ", "))
	}
	if len(removed) > 0 {
		changes = append(changes, "Removed duplicate/irrelevant skills: "+strings.Join(capList(removed, 10), ", "))
	}

	if n := bulletChanges(before.Experience, after.Experience); n > 0 {
		noun := "bullets"
		if n == 1 {
			noun = "bullet"
		}
		changes = append(changes, fmt.Sprintf("Improved %d experience %s", n, noun))
	}

	return changes
}

// skillDiff computes the case-insensitive set difference in both
// directions, each side sorted.
func skillDiff(before, after []string) (added, removed []string) {
	beforeSet := lowerSet(before)
	afterSet := lowerSet(after)

	for _, s := range after {
		if !beforeSet[strings.ToLower(s)] {
			added = append(added, s)
		}
	}
	for _, s := range before {
		if !afterSet[strings.ToLower(s)] {
			removed = append(removed, s)
		}
	}
	sort.Strings(added)
	sort.Strings(removed)
	return added, removed
}

func lowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, s := range items {
		set[strings.ToLower(s)] = true
	}
	return set
}

// bulletChanges counts position-wise responsibility differences, comparing
// only up to the shorter list at each level.
func bulletChanges(before, after []model.Experience) int {
	n := 0
	entries := minLen(len(before), len(after))
	for i := 0; i < entries; i++ {
		lines := minLen(len(before[i].Responsibilities), len(after[i].Responsibilities))
		for j := 0; j < lines; j++ {
			if before[i].Responsibilities[j] != after[i].Responsibilities[j] {
				n++
			}
		}
	}
	return n
}

func capList(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func minLen(a, b int) int {
	if a < b {
		return a
	}
	return b
}
