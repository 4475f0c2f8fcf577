package util

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// minResumeTextLength rejects PDFs whose text layer is too thin to say
// anything about the candidate (scans without a text layer end up here).
const minResumeTextLength = 100

// ExtractPDFText pulls the embedded text out of a PDF, page by page.
func ExtractPDFText(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var pages []string
	for n := 0; n < doc.NumPage(); n++ {
		text, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("page %d: failed to extract text: %w", n+1, err)
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			pages = append(pages, trimmed)
		}
	}

	result := strings.TrimSpace(strings.Join(pages, "\n\n"))
	if len(result) == 0 {
		return "", fmt.Errorf("no text extracted from PDF (scanned image or empty document)")
	}
	if len(result) < minResumeTextLength {
		return "", fmt.Errorf("content too short for meaningful evaluation")
	}
	return result, nil
}
