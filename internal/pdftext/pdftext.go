package pdftext

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"jobmatch/internal/errors"

	"github.com/ledongthuc/pdf"
)

// Extract pulls plain text out of a PDF held in memory. Pages with no text
// layer are skipped; when no page yields any text at all the document is
// treated as unreadable (scanned images, encrypted content) and an error is
// returned instead of an empty string.
func Extract(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.NewIOError(errors.ErrCodeInvalidFormat,
			"Failed to read PDF document", err)
	}

	var textBuilder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	extracted := strings.TrimSpace(textBuilder.String())
	if extracted == "" {
		return "", errors.NewIOError(errors.ErrCodeNoTextExtracted,
			"No text could be extracted from the PDF", nil).
			WithContext("pages", numPages)
	}

	return extracted, nil
}

// ExtractFile reads a PDF from disk and extracts its text.
func ExtractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewIOError(errors.ErrCodeFileNotFound,
				"PDF file does not exist", err).WithContext("path", path)
		}
		return "", errors.NewIOError(errors.ErrCodeFileNotReadable,
			"Failed to read PDF file", err).WithContext("path", path)
	}
	return Extract(data)
}

// IsPDF reports whether a file name points at a PDF document.
func IsPDF(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}
