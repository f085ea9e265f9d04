package resume

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var (
	// ErrNotFound is wrapped when the resume path does not exist.
	ErrNotFound = errors.New("resume file not found")
	// ErrExtraction is wrapped when the document cannot be decoded.
	ErrExtraction = errors.New("text extraction failed")
)

// ExtractText returns the plain text of a resume document, lowercased so the
// matcher can test containment directly. Supported formats are pdf, docx and
// plain text, picked by file extension.
func ExtractText(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("checking resume file %q: %w", path, err)
	}

	var (
		text string
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		text, err = extractPDFText(path)
	case ".docx":
		text, err = extractDocxText(path)
	case ".txt":
		var data []byte
		data, err = os.ReadFile(path)
		text = string(data)
	default:
		return "", fmt.Errorf("%w: unsupported file type %q", ErrExtraction, ext)
	}

	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	return strings.ToLower(text), nil
}

func extractPDFText(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("reading pdf: %w", err)
	}
	defer file.Close()

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("reading pdf page %d: %w", i, err)
		}
		builder.WriteString(text)
	}

	return builder.String(), nil
}

func extractDocxText(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("reading docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
