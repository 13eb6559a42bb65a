package pdftext

import (
	"testing"

	"jobmatch/internal/errors"
)

func TestExtractRejectsGarbage(t *testing.T) {
	_, err := Extract([]byte("this is not a pdf document"))
	if err == nil {
		t.Fatal("expected error for non-PDF input")
	}
	if code := errors.CodeOf(err); code != errors.ErrCodeInvalidFormat {
		t.Errorf("expected code %s, got %s", errors.ErrCodeInvalidFormat, code)
	}
}

func TestExtractFileMissing(t *testing.T) {
	_, err := ExtractFile("/nonexistent/resume.pdf")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if code := errors.CodeOf(err); code != errors.ErrCodeFileNotFound {
		t.Errorf("expected code %s, got %s", errors.ErrCodeFileNotFound, code)
	}
}

func TestIsPDF(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"resume.pdf", true},
		{"resume.PDF", true},
		{"dir/resume.pdf", true},
		{"resume.txt", false},
		{"resume", false},
		{"", false},
		{"resume.pdf.txt", false},
	}

	for _, tt := range tests {
		if got := IsPDF(tt.name); got != tt.expected {
			t.Errorf("IsPDF(%q) = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}
