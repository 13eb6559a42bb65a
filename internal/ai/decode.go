package ai

import (
	"strings"

	"jobmatch/internal/types"
)

// Decoding of the loosely-typed JSON object returned by the model into strict
// records. Every read is total: a missing key, a wrong type, or a blank entry
// degrades to an empty value instead of failing the pipeline. This guards
// against schema drift in model output - only an unparseable response body is
// an error, and that is handled upstream in generateObject.

// DecodeJobDescription builds a JobDescription from a parsed JSON object,
// applying defaults and trimming.
func DecodeJobDescription(data map[string]any) types.JobDescription {
	return types.JobDescription{
		Title:            stringField(data, "title"),
		Company:          stringField(data, "company"),
		Location:         stringField(data, "location"),
		RequiredSkills:   stringListField(data, "requiredSkills"),
		NiceToHaveSkills: stringListField(data, "niceToHaveSkills"),
		Responsibilities: stringListField(data, "responsibilities"),
		Keywords:         stringListField(data, "keywords"),
	}
}

// DecodeResume builds a Resume from a parsed JSON object. The prompt also
// asks the model to bucket vague traits into a soft_traits list; that list is
// deliberately not part of the record shape and is dropped here.
func DecodeResume(data map[string]any) types.Resume {
	return types.Resume{
		Name:     stringField(data, "name"),
		Headline: stringField(data, "headline"),
		Skills:   stringListField(data, "skills"),
		Tools:    stringListField(data, "tools"),
	}
}

// DecodeAdvice builds an Advice from a parsed JSON object. Advice fields are
// pass-through: absent fields stay empty and no further validation happens.
func DecodeAdvice(data map[string]any) types.Advice {
	return types.Advice{
		TailoredSummary:   stringField(data, "tailoredSummary"),
		RewrittenBullets:  stringListField(data, "rewrittenBullets"),
		SkillsToHighlight: stringListField(data, "skillsToHighlight"),
		SkillsToDevelop:   stringListField(data, "skillsToDevelop"),
	}
}

// stringField reads a trimmed string value, or "" when the key is absent or
// holds a non-string.
func stringField(data map[string]any, key string) string {
	if value, ok := data[key].(string); ok {
		return strings.TrimSpace(value)
	}
	return ""
}

// stringListField reads a list of trimmed strings. Non-list values and
// non-string elements are skipped rather than failing the decode.
func stringListField(data map[string]any, key string) []string {
	raw, ok := data[key].([]any)
	if !ok {
		return []string{}
	}

	result := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			result = append(result, strings.TrimSpace(s))
		}
	}
	return result
}
