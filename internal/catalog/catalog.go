package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

var (
	// ErrNotFound is wrapped when an explicitly requested skills file does not exist.
	ErrNotFound = errors.New("skills file not found")
	// ErrParse is wrapped when a skills file does not hold a valid category mapping.
	ErrParse = errors.New("invalid skills file")
)

// Conventional locations probed in the working directory when no explicit
// skills file is given. skills_db.json is the legacy name, kept so existing
// catalogs keep working.
var conventionalFiles = []string{"skills.yaml", "skills_db.json"}

// Category is one named group of skill keywords. Skills keep the order and
// casing of the source file; the first entries are the ones named in
// suggestions.
type Category struct {
	Name   string
	Skills []string
}

// Catalog is the ordered set of categories driving matching and suggestions.
// It is built once at startup and never mutated afterwards.
type Catalog struct {
	Categories []Category
}

// Default returns the built-in catalog used when no skills file is found.
func Default() *Catalog {
	return &Catalog{Categories: []Category{
		{Name: "Programming", Skills: []string{"Python", "Java", "C++", "JavaScript", "SQL", "R", "Go"}},
		{Name: "Data", Skills: []string{"SQL", "NoSQL", "Spark", "Pandas", "Tableau", "PowerBI", "Excel"}},
		{Name: "ML/AI", Skills: []string{"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "NLP"}},
		{Name: "DevOps", Skills: []string{"Docker", "Kubernetes", "AWS", "Azure", "CI/CD", "Terraform"}},
		{Name: "Soft Skills", Skills: []string{"Leadership", "Communication", "Teamwork", "Problem Solving"}},
	}}
}

// Resolve returns the catalog for this run. Precedence: the explicit path,
// then the conventional files in the working directory, then the built-in
// default.
func Resolve(explicit string) (*Catalog, string, error) {
	if explicit != "" {
		c, err := Load(explicit)
		return c, explicit, err
	}

	for _, path := range conventionalFiles {
		if _, err := os.Stat(path); err == nil {
			c, err := Load(path)
			return c, path, err
		}
	}

	return Default(), "", nil
}

// Load reads and parses a skills file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading skills file %q: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing skills file %q: %w", path, err)
	}
	return c, nil
}

// Parse decodes a category→skill-list mapping. The document is walked as
// yaml nodes instead of a Go map so the category order of the file is kept.
// JSON input parses too since yaml is a superset.
func Parse(data []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrParse)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must map category names to skill lists", ErrParse)
	}

	c := &Catalog{}
	seen := make(map[string]bool)

	for i := 0; i+1 < len(root.Content); i += 2 {
		name := strings.TrimSpace(root.Content[i].Value)
		if name == "" {
			return nil, fmt.Errorf("%w: category name must not be empty", ErrParse)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrParse, name)
		}
		seen[name] = true

		var skills []string
		if err := root.Content[i+1].Decode(&skills); err != nil {
			return nil, fmt.Errorf("%w: category %q must hold a list of strings", ErrParse, name)
		}

		if err := validateSkills(name, skills); err != nil {
			return nil, err
		}

		c.Categories = append(c.Categories, Category{Name: name, Skills: skills})
	}

	if len(c.Categories) == 0 {
		return nil, fmt.Errorf("%w: no categories defined", ErrParse)
	}

	return c, nil
}

// validateSkills enforces the per-category invariants: at least one skill,
// no blank entries, no duplicates within the category. A skill may still
// appear in several categories.
func validateSkills(category string, skills []string) error {
	if len(skills) == 0 {
		return fmt.Errorf("%w: category %q has no skills", ErrParse, category)
	}

	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: category %q contains a blank skill", ErrParse, category)
		}
		if seen[s] {
			return fmt.Errorf("%w: category %q lists %q twice", ErrParse, category, s)
		}
		seen[s] = true
	}

	return nil
}

func (c *Catalog) Len() int {
	return len(c.Categories)
}

// Names returns the category names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		names = append(names, cat.Name)
	}

	return names
}

// SkillCount returns the total number of skill entries across categories.
func (c *Catalog) SkillCount() int {
	total := 0
	for _, cat := range c.Categories {
		total += len(cat.Skills)
	}

	return total
}
