package ai

import (
	"context"

	"jobmatch/internal/types"
)

// AIProvider is the capability boundary to the external text-completion
// service. The pipeline depends on this interface rather than a concrete
// client so it can be exercised with a deterministic stub, including
// malformed-JSON and upstream-error scenarios.
// All methods return token usage information - callers can ignore it if not needed
type AIProvider interface {
	ExtractJobDescription(ctx context.Context, jdText string) (types.JobDescription, *TokenUsage, error)
	ExtractResume(ctx context.Context, resumeText string) (types.Resume, *TokenUsage, error)
	GenerateAdvice(ctx context.Context, input types.AdviceInput) (types.Advice, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}

// PromptBuilder interface for building AI prompts
type PromptBuilder interface {
	BuildExtractJobPrompt(jdText string) string
	BuildExtractResumePrompt(resumeText string) string
	BuildAdvicePrompt(input types.AdviceInput) string
}
