package formatters

import (
	"strings"
	"testing"

	"jobmatch/internal/types"
)

func sampleReport() types.MatchReport {
	return types.MatchReport{
		JD: types.JobDescription{
			Title:            "Backend Engineer",
			Company:          "Acme",
			RequiredSkills:   []string{"go", "sql"},
			NiceToHaveSkills: []string{"kubernetes"},
		},
		Resume: types.Resume{
			Name:   "Jordan Doe",
			Skills: []string{"go"},
		},
		Match: types.MatchResult{
			OverallScore:            55,
			RequiredMatchFraction:   0.5,
			NiceToHaveMatchFraction: 0,
			MatchedRequiredSkills:   []string{"go"},
			MissingRequiredSkills:   []string{"sql"},
			MissingNiceToHave:       []string{"kubernetes"},
		},
		Advice: types.Advice{
			TailoredSummary: "Emphasize Go service work.",
			SkillsToDevelop: []string{"sql"},
		},
	}
}

func TestFormatReportJSON(t *testing.T) {
	out, err := GlobalRegistry.Format(sampleReport(), "json")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(out, `"overallScore": 55`) {
		t.Errorf("JSON output missing overall score: %s", out)
	}
}

func TestFormatReportText(t *testing.T) {
	out, err := GlobalRegistry.Format(sampleReport(), "text")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	for _, want := range []string{
		"=== MATCH SCORE ===",
		"Overall Score: 55/100",
		"Missing Required Skills:",
		"- sql",
		"Emphasize Go service work.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q", want)
		}
	}
}

func TestFormatReportMarkdown(t *testing.T) {
	out, err := GlobalRegistry.Format(sampleReport(), "markdown")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	for _, want := range []string{
		"# Match Report",
		"**Overall Score:** 55/100",
		"### Skills to Develop",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q", want)
		}
	}
}

func TestFormatMatchResultText(t *testing.T) {
	out, err := GlobalRegistry.Format(sampleReport().Match, "text")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(out, "Required Skills Matched: 50.0%") {
		t.Errorf("unexpected match output: %s", out)
	}
}

func TestFormatUnknownFormat(t *testing.T) {
	if _, err := GlobalRegistry.Format(sampleReport(), "yaml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}
