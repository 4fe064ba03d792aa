package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ReadPDFText extracts the plain text of every page of the PDF at path, so
// lecture slides and textbook chapters can be used as study content directly.
func ReadPDFText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var b strings.Builder
	if _, err := io.Copy(&b, reader); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return b.String(), nil
}
