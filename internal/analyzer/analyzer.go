package analyzer

import (
	"fmt"
	"strings"

	"github.com/spigell/resume-analyzer/internal/catalog"
)

// Counts maps a matched skill to its mention value, keyed by the catalog's
// original casing. Matching is a presence test: a found skill is recorded
// with the value 1, a skill that is absent has no key at all.
type Counts map[string]int

// Severity classifies how badly a category is represented in the resume.
type Severity string

const (
	// SeverityMissing means no skill of the category was found.
	SeverityMissing Severity = "missing"
	// SeveritySparse means exactly one skill of the category was found.
	SeveritySparse Severity = "sparse"
)

const (
	missingExamples  = 3
	sparseCandidates = 2
)

// Suggestion is one improvement hint tied to a single category.
type Suggestion struct {
	Category string   `json:"category"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Match tests every catalog skill for case-insensitive substring containment
// in the resume text. The text is expected lowercased, as ExtractText
// returns it. A skill listed in several categories produces a single key.
func Match(text string, c *catalog.Catalog) Counts {
	counts := make(Counts)
	if text == "" {
		return counts
	}

	text = strings.ToLower(text)
	for _, cat := range c.Categories {
		for _, skill := range cat.Skills {
			if strings.Contains(text, strings.ToLower(skill)) {
				counts[skill] = 1
			}
		}
	}

	return counts
}

// Suggest walks the categories in catalog order and emits one suggestion for
// every under-represented one. A category with two or more matched skills is
// considered covered and produces nothing.
func Suggest(counts Counts, c *catalog.Catalog) []Suggestion {
	var suggestions []Suggestion

	for _, cat := range c.Categories {
		found := 0
		var absent []string
		for _, skill := range cat.Skills {
			if _, ok := counts[skill]; ok {
				found++
				continue
			}
			absent = append(absent, skill)
		}

		switch found {
		case 0:
			suggestions = append(suggestions, Suggestion{
				Category: cat.Name,
				Severity: SeverityMissing,
				Message: fmt.Sprintf("Missing %s skills. Consider adding: %s",
					cat.Name, strings.Join(head(cat.Skills, missingExamples), ", ")),
			})
		case 1:
			suggestions = append(suggestions, Suggestion{
				Category: cat.Name,
				Severity: SeveritySparse,
				Message: fmt.Sprintf("Few %s skills. Could add: %s",
					cat.Name, strings.Join(head(absent, sparseCandidates), ", ")),
			})
		}
	}

	return suggestions
}

func head(s []string, n int) []string {
	if len(s) <= n {
		return s
	}

	return s[:n]
}
