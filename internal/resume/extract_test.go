package resume

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestExtractTextMissingFile(t *testing.T) {
	_, err := ExtractText(filepath.Join(t.TempDir(), "absent.pdf"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestExtractTextUnsupportedType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.odt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := ExtractText(path)
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}
}

func TestExtractTextPlainTextIsLowercased(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	if err := os.WriteFile(path, []byte("Senior Go Developer, PYTHON and SQL"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	text, err := ExtractText(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "senior go developer, python and sql"
	if text != want {
		t.Fatalf("expected %q, got %q", want, text)
	}
}

func TestExtractTextCorruptPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	if err := os.WriteFile(path, []byte("not a pdf at all"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := ExtractText(path)
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}
}

func TestExtractTextCorruptDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.docx")
	if err := os.WriteFile(path, []byte("not a zip archive"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := ExtractText(path)
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}
}
