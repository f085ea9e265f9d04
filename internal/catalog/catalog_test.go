package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()

	if c.Len() != 5 {
		t.Fatalf("expected 5 default categories, got %d", c.Len())
	}

	for _, cat := range c.Categories {
		if cat.Name == "" {
			t.Fatalf("default category with empty name")
		}
		if err := validateSkills(cat.Name, cat.Skills); err != nil {
			t.Fatalf("default category %q is invalid: %v", cat.Name, err)
		}
	}
}

func TestParseKeepsDocumentOrder(t *testing.T) {
	data := []byte("Zeta:\n  - One\nAlpha:\n  - Two\nMiddle:\n  - Three\n")

	c, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Zeta", "Alpha", "Middle"}
	got := c.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("category %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestParseAcceptsJSON(t *testing.T) {
	data := []byte(`{"Programming": ["Python", "Go"], "Data": ["SQL"]}`)

	c, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Len() != 2 {
		t.Fatalf("expected 2 categories, got %d", c.Len())
	}
	if c.Categories[0].Name != "Programming" {
		t.Fatalf("expected Programming first, got %q", c.Categories[0].Name)
	}
	if c.SkillCount() != 3 {
		t.Fatalf("expected 3 skills, got %d", c.SkillCount())
	}
}

func TestParseRejectsMalformedShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "not yaml", data: "{invalid"},
		{name: "empty document", data: ""},
		{name: "top level list", data: "- Python\n- Go\n"},
		{name: "scalar category value", data: "Programming: Python\n"},
		{name: "nested mapping value", data: "Programming:\n  Python: 1\n"},
		{name: "empty category name", data: "\"\":\n  - Python\n"},
		{name: "empty skill list", data: "Programming: []\n"},
		{name: "blank skill", data: "Programming:\n  - \" \"\n"},
		{name: "duplicate skill in category", data: "Programming:\n  - Go\n  - Go\n"},
		{name: "duplicate category", data: "A:\n  - X\nA:\n  - Y\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tc.data))
			if err == nil {
				t.Fatalf("expected an error")
			}
			if !errors.Is(err, ErrParse) {
				t.Fatalf("expected ErrParse, got %v", err)
			}
		})
	}
}

func TestParseAllowsSkillInSeveralCategories(t *testing.T) {
	data := []byte("Programming:\n  - SQL\nData:\n  - SQL\n")

	c, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 categories, got %d", c.Len())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadWrapsParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.yaml")
	if err := os.WriteFile(path, []byte("- broken\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestResolveExplicitPathWins(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	conventional := []byte("Conventional:\n  - A\n")
	if err := os.WriteFile(filepath.Join(dir, "skills.yaml"), conventional, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	explicit := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(explicit, []byte("Explicit:\n  - B\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	c, source, err := Resolve(explicit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != explicit {
		t.Fatalf("expected source %q, got %q", explicit, source)
	}
	if c.Categories[0].Name != "Explicit" {
		t.Fatalf("expected the explicit catalog, got %q", c.Categories[0].Name)
	}
}

func TestResolveConventionalFileBeatsDefault(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.WriteFile(filepath.Join(dir, "skills_db.json"), []byte(`{"Legacy": ["X"]}`), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	c, source, err := Resolve("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != "skills_db.json" {
		t.Fatalf("expected the legacy file, got %q", source)
	}
	if c.Categories[0].Name != "Legacy" {
		t.Fatalf("expected the legacy catalog, got %q", c.Categories[0].Name)
	}
}

func TestResolveFallsBackToDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	c, source, err := Resolve("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != "" {
		t.Fatalf("expected no source file, got %q", source)
	}
	if c.Len() != Default().Len() {
		t.Fatalf("expected the default catalog")
	}
}

func TestResolveExplicitMissingFileFails(t *testing.T) {
	_, _, err := Resolve(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
