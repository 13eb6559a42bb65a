package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"jobmatch/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "MatchReport", &ReportTextFormatter{})
	registry.RegisterFormatter("markdown", "MatchReport", &ReportMarkdownFormatter{})
	registry.RegisterFormatter("text", "MatchResult", &MatchTextFormatter{})
	registry.RegisterFormatter("markdown", "MatchResult", &MatchMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.MatchReport:
		return "MatchReport"
	case types.MatchResult:
		return "MatchResult"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

func writeSkillList(output *strings.Builder, heading string, skills []string) {
	if len(skills) == 0 {
		return
	}
	output.WriteString(heading)
	output.WriteString("\n")
	for _, skill := range skills {
		output.WriteString(fmt.Sprintf("- %s\n", skill))
	}
	output.WriteString("\n")
}

func writeMatchText(output *strings.Builder, match types.MatchResult) {
	output.WriteString(fmt.Sprintf("Overall Score: %d/100\n", match.OverallScore))
	output.WriteString(fmt.Sprintf("Required Skills Matched: %.1f%%\n", match.RequiredMatchFraction*100))
	output.WriteString(fmt.Sprintf("Nice-to-Have Skills Matched: %.1f%%\n\n", match.NiceToHaveMatchFraction*100))

	writeSkillList(output, "Matched Required Skills:", match.MatchedRequiredSkills)
	writeSkillList(output, "Missing Required Skills:", match.MissingRequiredSkills)
	writeSkillList(output, "Matched Nice-to-Have Skills:", match.MatchedNiceToHave)
	writeSkillList(output, "Missing Nice-to-Have Skills:", match.MissingNiceToHave)
}

func writeMatchMarkdown(output *strings.Builder, match types.MatchResult) {
	output.WriteString(fmt.Sprintf("**Overall Score:** %d/100\n\n", match.OverallScore))
	output.WriteString(fmt.Sprintf("**Required Skills Matched:** %.1f%%\n\n", match.RequiredMatchFraction*100))
	output.WriteString(fmt.Sprintf("**Nice-to-Have Skills Matched:** %.1f%%\n\n", match.NiceToHaveMatchFraction*100))

	writeSkillList(output, "### Matched Required Skills", match.MatchedRequiredSkills)
	writeSkillList(output, "### Missing Required Skills", match.MissingRequiredSkills)
	writeSkillList(output, "### Matched Nice-to-Have Skills", match.MatchedNiceToHave)
	writeSkillList(output, "### Missing Nice-to-Have Skills", match.MissingNiceToHave)
}

// MatchTextFormatter handles text formatting for standalone match results
type MatchTextFormatter struct{}

func (mtf *MatchTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.MatchResult)
	if !ok {
		return "", fmt.Errorf("expected MatchResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== MATCH SCORE ===\n\n")
	writeMatchText(&output, result)

	return output.String(), nil
}

func (mtf *MatchTextFormatter) SupportedType() string {
	return "MatchResult"
}

// MatchMarkdownFormatter handles markdown formatting for standalone match results
type MatchMarkdownFormatter struct{}

func (mmf *MatchMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.MatchResult)
	if !ok {
		return "", fmt.Errorf("expected MatchResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Match Score\n\n")
	writeMatchMarkdown(&output, result)

	return output.String(), nil
}

func (mmf *MatchMarkdownFormatter) SupportedType() string {
	return "MatchResult"
}

// ReportTextFormatter handles text formatting for full match reports
type ReportTextFormatter struct{}

func (rtf *ReportTextFormatter) Format(data any) (string, error) {
	report, ok := data.(types.MatchReport)
	if !ok {
		return "", fmt.Errorf("expected MatchReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== JOB DESCRIPTION ===\n")
	output.WriteString(fmt.Sprintf("Title: %s\n", report.JD.Title))
	if report.JD.Company != "" {
		output.WriteString(fmt.Sprintf("Company: %s\n", report.JD.Company))
	}
	if report.JD.Location != "" {
		output.WriteString(fmt.Sprintf("Location: %s\n", report.JD.Location))
	}
	output.WriteString("\n")
	writeSkillList(&output, "Required Skills:", report.JD.RequiredSkills)
	writeSkillList(&output, "Nice-to-Have Skills:", report.JD.NiceToHaveSkills)

	output.WriteString("=== CANDIDATE ===\n")
	output.WriteString(fmt.Sprintf("Name: %s\n", report.Resume.Name))
	if report.Resume.Headline != "" {
		output.WriteString(fmt.Sprintf("Headline: %s\n", report.Resume.Headline))
	}
	output.WriteString("\n")
	writeSkillList(&output, "Skills:", report.Resume.Skills)
	writeSkillList(&output, "Tools:", report.Resume.Tools)

	output.WriteString("=== MATCH SCORE ===\n\n")
	writeMatchText(&output, report.Match)

	output.WriteString("=== ADVICE ===\n\n")
	if report.Advice.TailoredSummary != "" {
		output.WriteString("Tailored Summary:\n")
		output.WriteString(report.Advice.TailoredSummary)
		output.WriteString("\n\n")
	}
	if len(report.Advice.RewrittenBullets) > 0 {
		output.WriteString("Rewritten Bullets:\n")
		for i, bullet := range report.Advice.RewrittenBullets {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, bullet))
		}
		output.WriteString("\n")
	}
	writeSkillList(&output, "Skills to Highlight:", report.Advice.SkillsToHighlight)
	writeSkillList(&output, "Skills to Develop:", report.Advice.SkillsToDevelop)

	return output.String(), nil
}

func (rtf *ReportTextFormatter) SupportedType() string {
	return "MatchReport"
}

// ReportMarkdownFormatter handles markdown formatting for full match reports
type ReportMarkdownFormatter struct{}

func (rmf *ReportMarkdownFormatter) Format(data any) (string, error) {
	report, ok := data.(types.MatchReport)
	if !ok {
		return "", fmt.Errorf("expected MatchReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Match Report\n\n")

	output.WriteString("## Job Description\n\n")
	output.WriteString(fmt.Sprintf("**Title:** %s\n\n", report.JD.Title))
	if report.JD.Company != "" {
		output.WriteString(fmt.Sprintf("**Company:** %s\n\n", report.JD.Company))
	}
	if report.JD.Location != "" {
		output.WriteString(fmt.Sprintf("**Location:** %s\n\n", report.JD.Location))
	}
	writeSkillList(&output, "### Required Skills", report.JD.RequiredSkills)
	writeSkillList(&output, "### Nice-to-Have Skills", report.JD.NiceToHaveSkills)

	output.WriteString("## Candidate\n\n")
	output.WriteString(fmt.Sprintf("**Name:** %s\n\n", report.Resume.Name))
	if report.Resume.Headline != "" {
		output.WriteString(fmt.Sprintf("**Headline:** %s\n\n", report.Resume.Headline))
	}
	writeSkillList(&output, "### Skills", report.Resume.Skills)
	writeSkillList(&output, "### Tools", report.Resume.Tools)

	output.WriteString("## Match Score\n\n")
	writeMatchMarkdown(&output, report.Match)

	output.WriteString("## Advice\n\n")
	if report.Advice.TailoredSummary != "" {
		output.WriteString("### Tailored Summary\n")
		output.WriteString(report.Advice.TailoredSummary)
		output.WriteString("\n\n")
	}
	if len(report.Advice.RewrittenBullets) > 0 {
		output.WriteString("### Rewritten Bullets\n")
		for i, bullet := range report.Advice.RewrittenBullets {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, bullet))
		}
		output.WriteString("\n")
	}
	writeSkillList(&output, "### Skills to Highlight", report.Advice.SkillsToHighlight)
	writeSkillList(&output, "### Skills to Develop", report.Advice.SkillsToDevelop)

	return output.String(), nil
}

func (rmf *ReportMarkdownFormatter) SupportedType() string {
	return "MatchReport"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
