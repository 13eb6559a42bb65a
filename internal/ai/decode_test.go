package ai

import (
	"encoding/json"
	"reflect"
	"testing"

	"jobmatch/internal/types"
)

func TestDecodeJobDescription(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected types.JobDescription
	}{
		{
			name: "complete object",
			payload: `{
				"title": " Senior Data Engineer ",
				"company": "Acme",
				"location": "Remote",
				"requiredSkills": ["Python", " SQL "],
				"niceToHaveSkills": ["Airflow"],
				"responsibilities": ["Build pipelines", "Own data quality"],
				"keywords": ["etl", "warehouse"]
			}`,
			expected: types.JobDescription{
				Title:            "Senior Data Engineer",
				Company:          "Acme",
				Location:         "Remote",
				RequiredSkills:   []string{"Python", "SQL"},
				NiceToHaveSkills: []string{"Airflow"},
				Responsibilities: []string{"Build pipelines", "Own data quality"},
				Keywords:         []string{"etl", "warehouse"},
			},
		},
		{
			name:    "missing keys default to empty values",
			payload: `{"title": "Backend Engineer"}`,
			expected: types.JobDescription{
				Title:            "Backend Engineer",
				RequiredSkills:   []string{},
				NiceToHaveSkills: []string{},
				Responsibilities: []string{},
				Keywords:         []string{},
			},
		},
		{
			name:    "wrong types are skipped, not fatal",
			payload: `{"title": 42, "requiredSkills": "not-a-list", "keywords": ["go", 7, "sql"]}`,
			expected: types.JobDescription{
				RequiredSkills:   []string{},
				NiceToHaveSkills: []string{},
				Responsibilities: []string{},
				Keywords:         []string{"go", "sql"},
			},
		},
		{
			name:    "empty object",
			payload: `{}`,
			expected: types.JobDescription{
				RequiredSkills:   []string{},
				NiceToHaveSkills: []string{},
				Responsibilities: []string{},
				Keywords:         []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data map[string]any
			if err := json.Unmarshal([]byte(tt.payload), &data); err != nil {
				t.Fatalf("test payload is not valid JSON: %v", err)
			}

			got := DecodeJobDescription(data)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("DecodeJobDescription() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestDecodeResume(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected types.Resume
	}{
		{
			name: "complete object with soft_traits dropped",
			payload: `{
				"name": "  Jordan Lee ",
				"headline": "CS student",
				"skills": ["Go", "Python"],
				"tools": ["Docker"],
				"soft_traits": ["hard-working", "problem solver"]
			}`,
			expected: types.Resume{
				Name:     "Jordan Lee",
				Headline: "CS student",
				Skills:   []string{"Go", "Python"},
				Tools:    []string{"Docker"},
			},
		},
		{
			name:    "missing keys default to empty values",
			payload: `{"skills": ["java"]}`,
			expected: types.Resume{
				Skills: []string{"java"},
				Tools:  []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data map[string]any
			if err := json.Unmarshal([]byte(tt.payload), &data); err != nil {
				t.Fatalf("test payload is not valid JSON: %v", err)
			}

			got := DecodeResume(data)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("DecodeResume() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestDecodeAdvice(t *testing.T) {
	payload := `{
		"tailoredSummary": "Strong fit for the data platform role.",
		"rewrittenBullets": ["Built ETL pipelines in Python serving 2M rows/day"],
		"skillsToHighlight": ["Python", "SQL"]
	}`

	var data map[string]any
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		t.Fatalf("test payload is not valid JSON: %v", err)
	}

	got := DecodeAdvice(data)
	if got.TailoredSummary != "Strong fit for the data platform role." {
		t.Errorf("unexpected summary: %q", got.TailoredSummary)
	}
	if len(got.RewrittenBullets) != 1 {
		t.Errorf("expected 1 rewritten bullet, got %d", len(got.RewrittenBullets))
	}
	// skillsToDevelop absent from the response: tolerated, stays empty
	if len(got.SkillsToDevelop) != 0 {
		t.Errorf("expected empty skillsToDevelop, got %v", got.SkillsToDevelop)
	}
}
