package match

import (
	"math"
	"sort"
	"strings"

	"jobmatch/internal/types"
)

// Weighting between required and nice-to-have overlap. Required skills
// dominate the score.
const (
	requiredWeight = 0.7
	niceWeight     = 0.3
)

// Score computes the deterministic skill-overlap score between an extracted
// job description and an extracted resume. It is a pure function: no model
// calls, no randomness, same inputs always produce the same MatchResult.
//
// An empty required (or nice-to-have) list counts as fully satisfied rather
// than zero, so postings without an explicit skill list are not penalized.
// The overall score is rounded half away from zero (math.Round); the reported
// fractions are rounded to 3 decimals after the score is computed, so display
// rounding never changes the integer score.
func Score(jd types.JobDescription, resume types.Resume) types.MatchResult {
	resumeSkills := normalizeSet(append(append([]string{}, resume.Skills...), resume.Tools...))
	required := normalizeSet(jd.RequiredSkills)
	nice := normalizeSet(jd.NiceToHaveSkills)

	matchedRequired, missingRequired := partition(required, resumeSkills)
	matchedNice, missingNice := partition(nice, resumeSkills)

	requiredScore := fraction(len(matchedRequired), len(required))
	niceScore := fraction(len(matchedNice), len(nice))

	overall := int(math.Round((requiredScore*requiredWeight + niceScore*niceWeight) * 100))

	return types.MatchResult{
		OverallScore:            overall,
		RequiredMatchFraction:   round3(requiredScore),
		NiceToHaveMatchFraction: round3(niceScore),
		MatchedRequiredSkills:   matchedRequired,
		MissingRequiredSkills:   missingRequired,
		MatchedNiceToHave:       matchedNice,
		MissingNiceToHave:       missingNice,
	}
}

// normalizeSet lowercases and trims every entry, dropping empties and
// collapsing duplicates.
func normalizeSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		normalized := strings.ToLower(strings.TrimSpace(item))
		if normalized == "" {
			continue
		}
		set[normalized] = struct{}{}
	}
	return set
}

// partition splits wanted into the entries present in have and the entries
// absent from it, both sorted ascending.
func partition(wanted, have map[string]struct{}) (matched, missing []string) {
	matched = []string{}
	missing = []string{}
	for skill := range wanted {
		if _, ok := have[skill]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	return matched, missing
}

// fraction returns matched/total, or 1.0 for an empty set: no requirements
// means nothing is unmet.
func fraction(matched, total int) float64 {
	if total == 0 {
		return 1.0
	}
	return float64(matched) / float64(total)
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
