package files

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// PreviewPDF extracts the text of the first pages of a PDF so receipts can
// be skimmed without an external viewer. Output is capped at maxChars.
func PreviewPDF(path string, maxChars int) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for page := 0; page < doc.NumPage(); page++ {
		text, err := doc.Text(page)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", page+1, err)
		}
		sb.WriteString(text)
		if sb.Len() >= maxChars {
			break
		}
	}

	preview := sb.String()
	if maxChars > 0 && len(preview) > maxChars {
		preview = preview[:maxChars]
	}
	return strings.TrimSpace(preview), nil
}
