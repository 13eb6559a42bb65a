package match

import (
	"reflect"
	"testing"

	"jobmatch/internal/types"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		jd       types.JobDescription
		resume   types.Resume
		expected types.MatchResult
	}{
		{
			name: "full required match with extra resume skills",
			jd: types.JobDescription{
				RequiredSkills: []string{"Python", "SQL"},
			},
			resume: types.Resume{
				Skills: []string{"python", "sql", "java"},
			},
			expected: types.MatchResult{
				OverallScore:            100,
				RequiredMatchFraction:   1.0,
				NiceToHaveMatchFraction: 1.0,
				MatchedRequiredSkills:   []string{"python", "sql"},
				MissingRequiredSkills:   []string{},
				MatchedNiceToHave:       []string{},
				MissingNiceToHave:       []string{},
			},
		},
		{
			name: "partial match with weighting",
			jd: types.JobDescription{
				RequiredSkills:   []string{"python", "sql"},
				NiceToHaveSkills: []string{"docker"},
			},
			resume: types.Resume{
				Skills: []string{"python"},
			},
			expected: types.MatchResult{
				OverallScore:            35,
				RequiredMatchFraction:   0.5,
				NiceToHaveMatchFraction: 0.0,
				MatchedRequiredSkills:   []string{"python"},
				MissingRequiredSkills:   []string{"sql"},
				MatchedNiceToHave:       []string{},
				MissingNiceToHave:       []string{"docker"},
			},
		},
		{
			name: "empty required list counts as fully satisfied",
			jd: types.JobDescription{
				NiceToHaveSkills: []string{"kubernetes"},
			},
			resume: types.Resume{
				Skills: []string{"go"},
			},
			expected: types.MatchResult{
				OverallScore:            70,
				RequiredMatchFraction:   1.0,
				NiceToHaveMatchFraction: 0.0,
				MatchedRequiredSkills:   []string{},
				MissingRequiredSkills:   []string{},
				MatchedNiceToHave:       []string{},
				MissingNiceToHave:       []string{"kubernetes"},
			},
		},
		{
			name:   "both lists empty yields a perfect vacuous score",
			jd:     types.JobDescription{},
			resume: types.Resume{},
			expected: types.MatchResult{
				OverallScore:            100,
				RequiredMatchFraction:   1.0,
				NiceToHaveMatchFraction: 1.0,
				MatchedRequiredSkills:   []string{},
				MissingRequiredSkills:   []string{},
				MatchedNiceToHave:       []string{},
				MissingNiceToHave:       []string{},
			},
		},
		{
			name: "case insensitive matching across skills and tools",
			jd: types.JobDescription{
				RequiredSkills:   []string{"Python", "Terraform"},
				NiceToHaveSkills: []string{"AWS"},
			},
			resume: types.Resume{
				Skills: []string{"PYTHON"},
				Tools:  []string{"terraform", "aws"},
			},
			expected: types.MatchResult{
				OverallScore:            100,
				RequiredMatchFraction:   1.0,
				NiceToHaveMatchFraction: 1.0,
				MatchedRequiredSkills:   []string{"python", "terraform"},
				MissingRequiredSkills:   []string{},
				MatchedNiceToHave:       []string{"aws"},
				MissingNiceToHave:       []string{},
			},
		},
		{
			name: "duplicates collapse before scoring",
			jd: types.JobDescription{
				RequiredSkills: []string{"Go", "go", " GO "},
			},
			resume: types.Resume{
				Skills: []string{"Rust"},
			},
			expected: types.MatchResult{
				OverallScore:            30,
				RequiredMatchFraction:   0.0,
				NiceToHaveMatchFraction: 1.0,
				MatchedRequiredSkills:   []string{},
				MissingRequiredSkills:   []string{"go"},
				MatchedNiceToHave:       []string{},
				MissingNiceToHave:       []string{},
			},
		},
		{
			name: "half scores round away from zero",
			jd: types.JobDescription{
				RequiredSkills:   []string{"a", "b", "c", "d"},
				NiceToHaveSkills: []string{"e"},
			},
			resume: types.Resume{
				Skills: []string{"a", "b", "c"},
			},
			// required 3/4 = 0.75 -> 52.5 weighted, nice 0 -> 52.5 rounds to 53
			expected: types.MatchResult{
				OverallScore:            53,
				RequiredMatchFraction:   0.75,
				NiceToHaveMatchFraction: 0.0,
				MatchedRequiredSkills:   []string{"a", "b", "c"},
				MissingRequiredSkills:   []string{"d"},
				MatchedNiceToHave:       []string{},
				MissingNiceToHave:       []string{"e"},
			},
		},
		{
			name: "fractions rounded to three decimals for reporting",
			jd: types.JobDescription{
				RequiredSkills: []string{"a", "b", "c"},
			},
			resume: types.Resume{
				Skills: []string{"a"},
			},
			// 1/3 = 0.333... reported as 0.333; score from the unrounded
			// fraction: round(0.3333*0.7*100 + 30) = round(53.33) = 53
			expected: types.MatchResult{
				OverallScore:            53,
				RequiredMatchFraction:   0.333,
				NiceToHaveMatchFraction: 1.0,
				MatchedRequiredSkills:   []string{"a"},
				MissingRequiredSkills:   []string{"b", "c"},
				MatchedNiceToHave:       []string{},
				MissingNiceToHave:       []string{},
			},
		},
		{
			name: "missing lists are sorted ascending",
			jd: types.JobDescription{
				RequiredSkills: []string{"Zookeeper", "Airflow", "MySQL"},
			},
			resume: types.Resume{},
			expected: types.MatchResult{
				OverallScore:            30,
				RequiredMatchFraction:   0.0,
				NiceToHaveMatchFraction: 1.0,
				MatchedRequiredSkills:   []string{},
				MissingRequiredSkills:   []string{"airflow", "mysql", "zookeeper"},
				MatchedNiceToHave:       []string{},
				MissingNiceToHave:       []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Score(tt.jd, tt.resume)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Score() = %+v, expected %+v", result, tt.expected)
			}
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	jd := types.JobDescription{
		RequiredSkills:   []string{"Go", "PostgreSQL", "Kafka", "Docker"},
		NiceToHaveSkills: []string{"Kubernetes", "Terraform"},
	}
	resume := types.Resume{
		Skills: []string{"go", "kafka", "terraform"},
		Tools:  []string{"docker", "git"},
	}

	first := Score(jd, resume)
	for i := 0; i < 10; i++ {
		if got := Score(jd, resume); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d produced %+v, first run produced %+v", i, got, first)
		}
	}
}

func TestScoreIgnoresBlankEntries(t *testing.T) {
	jd := types.JobDescription{
		RequiredSkills: []string{"", "  ", "python"},
	}
	resume := types.Resume{
		Skills: []string{"python", ""},
	}

	result := Score(jd, resume)
	if result.RequiredMatchFraction != 1.0 {
		t.Errorf("expected blank entries to be dropped, got fraction %v", result.RequiredMatchFraction)
	}
	if len(result.MatchedRequiredSkills) != 1 || result.MatchedRequiredSkills[0] != "python" {
		t.Errorf("unexpected matched skills: %v", result.MatchedRequiredSkills)
	}
}

func BenchmarkScore(b *testing.B) {
	jd := types.JobDescription{
		RequiredSkills:   []string{"Go", "PostgreSQL", "Kafka", "Docker", "Redis", "gRPC"},
		NiceToHaveSkills: []string{"Kubernetes", "Terraform", "AWS"},
	}
	resume := types.Resume{
		Skills: []string{"go", "kafka", "redis", "grpc", "python"},
		Tools:  []string{"docker", "git", "aws"},
	}

	for b.Loop() {
		Score(jd, resume)
	}
}
