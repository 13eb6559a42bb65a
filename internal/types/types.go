package types

// JobDescription is the structured record extracted from a raw job posting.
// All string fields are trimmed; absent fields decode to empty values.
type JobDescription struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	RequiredSkills   []string `json:"requiredSkills"`
	NiceToHaveSkills []string `json:"niceToHaveSkills"`
	Responsibilities []string `json:"responsibilities"`
	Keywords         []string `json:"keywords"`
}

// Resume is the structured record extracted from a candidate's resume text.
type Resume struct {
	Name     string   `json:"name"`
	Headline string   `json:"headline"`
	Skills   []string `json:"skills"`
	Tools    []string `json:"tools"`
}

// MatchResult is the deterministic overlap score between a job description
// and a resume. It is computed locally, never by the model, and is immutable
// once built.
//
// Matched/missing lists are lowercase-normalized and sorted ascending so two
// runs over the same records produce byte-identical results.
type MatchResult struct {
	OverallScore            int      `json:"overallScore"`
	RequiredMatchFraction   float64  `json:"requiredMatchFraction"`
	NiceToHaveMatchFraction float64  `json:"niceToHaveMatchFraction"`
	MatchedRequiredSkills   []string `json:"matchedRequiredSkills"`
	MissingRequiredSkills   []string `json:"missingRequiredSkills"`
	MatchedNiceToHave       []string `json:"matchedNiceToHave"`
	MissingNiceToHave       []string `json:"missingNiceToHave"`
}

// Advice is the holistic tailoring advice generated by the model. All fields
// are optional: the schema is requested by prompt only and the response is
// passed through without post-validation, so consumers must tolerate absent
// fields. The model's own fit judgment inside TailoredSummary may disagree
// with MatchResult.OverallScore; the two are intentionally never reconciled.
type Advice struct {
	TailoredSummary   string   `json:"tailoredSummary,omitempty"`
	RewrittenBullets  []string `json:"rewrittenBullets,omitempty"`
	SkillsToHighlight []string `json:"skillsToHighlight,omitempty"`
	SkillsToDevelop   []string `json:"skillsToDevelop,omitempty"`
}

// AdviceInput carries everything the advice generation step needs: both
// structured records plus both raw source texts.
type AdviceInput struct {
	JD         JobDescription `json:"jd"`
	Resume     Resume         `json:"resume"`
	JDText     string         `json:"jdText"`
	ResumeText string         `json:"resumeText"`
}

// MatchReport is the combined result of one pipeline run.
type MatchReport struct {
	JD     JobDescription `json:"jd"`
	Resume Resume         `json:"resume"`
	Match  MatchResult    `json:"match"`
	Advice Advice         `json:"advice"`
}

// MatchInput represents the raw inputs to one pipeline run.
type MatchInput struct {
	JDText     string `json:"jdText"`
	ResumeText string `json:"resumeText"`
}
