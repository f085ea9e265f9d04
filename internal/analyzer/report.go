package analyzer

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spigell/resume-analyzer/internal/catalog"
)

const (
	analysisHeader    = "=== SKILL ANALYSIS ==="
	suggestionsHeader = "=== SUGGESTIONS ==="
	noSkillsLine      = "No skills detected from the database"
	coveredLine       = "Good job! Your resume covers diverse skill categories."
)

// Report is the write-once result of one analysis run.
type Report struct {
	File        string       `json:"file"`
	Skills      Counts       `json:"skills"`
	Suggestions []Suggestion `json:"suggestions"`

	rendered string
}

// NewReport assembles a report for the given resume file. The display text
// is rendered once at construction.
func NewReport(file string, counts Counts, suggestions []Suggestion) *Report {
	return &Report{
		File:        file,
		Skills:      counts,
		Suggestions: suggestions,
		rendered:    Format(counts, suggestions),
	}
}

func (r *Report) String() string {
	return r.rendered
}

// DumpToTmpFile writes the report as indented json and returns the filename.
func (r *Report) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "skill_report_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// CoverageByCategory summarizes how many skills of each category were found.
func (r *Report) CoverageByCategory(c *catalog.Catalog) map[string]map[string]string {
	coverage := make(map[string]map[string]string, c.Len())

	for _, cat := range c.Categories {
		var found []string
		for _, skill := range cat.Skills {
			if _, ok := r.Skills[skill]; ok {
				found = append(found, skill)
			}
		}

		entry := map[string]string{
			"found": strconv.Itoa(len(found)),
			"total": strconv.Itoa(len(cat.Skills)),
		}
		if len(found) > 0 {
			entry["skills"] = strings.Join(found, ", ")
		}

		coverage[cat.Name] = entry
	}

	return coverage
}

// Format renders the analysis as display text. Pure and deterministic:
// matched skills are sorted by descending count, ties broken by name.
func Format(counts Counts, suggestions []Suggestion) string {
	lines := []string{analysisHeader}

	if len(counts) == 0 {
		lines = append(lines, noSkillsLine)
	} else {
		skills := make([]string, 0, len(counts))
		for skill := range counts {
			skills = append(skills, skill)
		}
		sort.Slice(skills, func(i, j int) bool {
			if counts[skills[i]] != counts[skills[j]] {
				return counts[skills[i]] > counts[skills[j]]
			}
			return skills[i] < skills[j]
		})

		for _, skill := range skills {
			lines = append(lines, fmt.Sprintf("%s: %d %s", skill, counts[skill], pluralize("mention", counts[skill])))
		}
	}

	if len(suggestions) > 0 {
		lines = append(lines, "", suggestionsHeader)
		for _, s := range suggestions {
			lines = append(lines, s.Message)
		}
	} else {
		lines = append(lines, "", coveredLine)
	}

	return strings.Join(lines, "\n")
}

func pluralize(word string, n int) string {
	if n > 1 {
		return word + "s"
	}

	return word
}
