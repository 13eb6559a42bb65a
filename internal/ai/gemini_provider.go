package ai

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"net"
	"net/http"
	"time"

	"jobmatch/internal/config"
	jobmatchErrors "jobmatch/internal/errors"
	"jobmatch/internal/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
)

// GeminiProvider implements AIProvider for Google Gemini
type GeminiProvider struct {
	client         *genai.Client
	httpClient     *http.Client
	config         *config.OperationAIConfig
	circuitBreaker *AICircuitBreaker
	modelBreaker   *ModelCircuitBreaker
	logger         *jobmatchErrors.Logger
}

// Ensure GeminiProvider implements AIProvider
var _ AIProvider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a new Gemini provider instance for a specific operation
func NewGeminiProvider(cfg *config.OperationAIConfig, operationType string, logger *jobmatchErrors.Logger) (*GeminiProvider, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, jobmatchErrors.NewAIError(jobmatchErrors.ErrCodeUpstreamFailed,
			"Failed to create Gemini client", err)
	}

	// Initialize circuit breaker with operation-specific configuration
	circuitBreaker := NewAICircuitBreaker(operationType, cfg, logger)
	modelBreaker := NewModelCircuitBreaker(operationType, cfg, logger)

	return &GeminiProvider{
		client: client,
		httpClient: &http.Client{
			Timeout: *cfg.Timeout,
		},
		config:         cfg,
		circuitBreaker: circuitBreaker,
		modelBreaker:   modelBreaker,
		logger:         logger,
	}, nil
}

// ModelInfo represents information about the AI model
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Version     string `json:"version,omitempty"`
	Available   bool   `json:"available"`
	Error       string `json:"error,omitempty"`
}

// GetModelInfo checks the readiness and availability of the configured model
func (g *GeminiProvider) GetModelInfo(ctx context.Context) *ModelInfo {
	modelInfo := &ModelInfo{
		Name:      g.config.Model,
		Available: false,
	}

	checkCtx, cancel := context.WithTimeout(ctx, getAIModelCheckTimeout())
	defer cancel()

	// Get model information from Gemini API with circuit breaker
	model, err := g.modelBreaker.ExecuteModel(func() (*genai.Model, error) {
		return g.client.Models.Get(checkCtx, g.config.Model, &genai.GetModelConfig{})
	})
	if err != nil {
		modelInfo.Error = fmt.Sprintf("Failed to get model info: %v", err)

		g.logger.Warn("Model availability check failed",
			"model", g.config.Model,
			"provider", g.config.Provider,
			"error", err.Error())
		return modelInfo
	}

	modelInfo.Available = true
	if model.DisplayName != "" {
		modelInfo.DisplayName = model.DisplayName
	}
	if model.Version != "" {
		modelInfo.Version = model.Version
	}

	g.logger.Debug("Model availability check successful",
		"model", g.config.Model,
		"provider", g.config.Provider,
		"display_name", modelInfo.DisplayName,
		"version", modelInfo.Version)

	return modelInfo
}

// executeWithRetry executes an AI operation with retry logic and exponential backoff
func (g *GeminiProvider) executeWithRetry(ctx context.Context, operation string, fn func() (*genai.GenerateContentResponse, error)) (*genai.GenerateContentResponse, error) {
	var lastErr error
	attempts := 0

	for attempt := 0; attempt <= *g.config.MaxRetries; attempt++ {
		if attempt > 0 {
			g.logger.Warn("Retrying AI operation",
				"operation", operation,
				"attempt", attempt,
				"max_retries", *g.config.MaxRetries,
				"error", lastErr.Error())

			// Exponential backoff with jitter to prevent thundering herd
			baseDelay := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
			// Use crypto/rand for secure random jitter
			jitterMax := big.NewInt(int64(float64(baseDelay) * 0.1))
			jitterBig, _ := rand.Int(rand.Reader, jitterMax)
			jitter := time.Duration(jitterBig.Int64())
			// Cap maximum backoff at 30 seconds
			backoff := min(baseDelay+jitter, 30*time.Second)

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		attempts = attempt + 1
		result, err := fn()
		if err == nil {
			if attempt > 0 {
				g.logger.Info("AI operation succeeded after retry",
					"operation", operation,
					"successful_attempt", attempt+1,
					"total_attempts", attempt+1)
			}
			return result, nil
		}

		lastErr = err

		// Don't retry on certain errors (auth, invalid input, etc.)
		if !g.isRetryableError(err) {
			g.logger.Debug("Error is not retryable, stopping retry attempts",
				"operation", operation,
				"error", err.Error())
			break
		}
	}

	// A non-retryable error breaks out early, so report the attempts actually
	// made rather than the configured maximum.
	g.logger.LogError(lastErr, "AI operation failed after all retry attempts",
		"operation", operation,
		"total_attempts", attempts)

	return nil, fmt.Errorf("operation '%s' failed after %d attempts: %w", operation, attempts, lastErr)
}

// isRetryableError determines if an error should trigger a retry
func (g *GeminiProvider) isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Check for network errors (timeouts, connection issues)
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return true // Retry on timeouts
		}
		// Consider other network errors retryable (e.g., connection refused)
		return true
	}

	// Check for Google API errors (HTTP status codes)
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}

	return false
}

// generateObject runs one model call and returns the response parsed as a JSON
// object. The two failure modes stay distinct: a transport or service failure
// (after retries and breaker) surfaces as UPSTREAM_FAILED, while a response
// body that is not a JSON object surfaces as MALFORMED_RESPONSE and is never
// retried, since resending the same prompt would just burn quota.
func (g *GeminiProvider) generateObject(
	ctx context.Context,
	operationName string,
	userPrompt string,
	systemPrompt string,
	spanAttributes ...attribute.KeyValue,
) (map[string]any, *TokenUsage, error) {
	tracer := otel.Tracer("jobmatch.ai.gemini")
	ctx, span := tracer.Start(ctx, "gemini."+operationName)
	defer span.End()

	span.SetAttributes(
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", g.config.Model),
		attribute.Float64("ai.temperature", float64(*g.config.Temperature)),
	)
	span.SetAttributes(spanAttributes...)

	// The response is constrained to JSON by MIME type only. A response schema
	// would make absent fields a hard API error, but callers tolerate missing
	// fields and fill defaults during decoding.
	genaiConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
	if *g.config.Temperature > 0 {
		genaiConfig.Temperature = g.config.Temperature
	}
	if *g.config.UseSystemPrompts && systemPrompt != "" {
		genaiConfig.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	callCtx := ctx
	if g.config.Timeout != nil && *g.config.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, *g.config.Timeout)
		defer cancel()
	}

	result, err := g.circuitBreaker.Execute(func() (*genai.GenerateContentResponse, error) {
		return g.executeWithRetry(callCtx, operationName, func() (*genai.GenerateContentResponse, error) {
			return g.client.Models.GenerateContent(callCtx, g.config.Model, genai.Text(userPrompt), genaiConfig)
		})
	})

	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return nil, nil, jobmatchErrors.NewAIError(jobmatchErrors.ErrCodeUpstreamFailed,
			"Failed to generate content for "+operationName, err)
	}

	object, err := decodeObjectResponse(operationName, result.Text())
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return nil, nil, err
	}

	tokenUsage := extractTokenUsage(result)
	if tokenUsage != nil {
		span.SetAttributes(
			attribute.Int64("ai.tokens.input", tokenUsage.InputTokens),
			attribute.Int64("ai.tokens.output", tokenUsage.OutputTokens),
			attribute.Int64("ai.tokens.total", tokenUsage.TotalTokens),
		)
	}

	span.SetAttributes(attribute.Bool("success", true))
	return object, tokenUsage, nil
}

// ExtractJobDescription implements AIProvider for job description extraction
func (g *GeminiProvider) ExtractJobDescription(ctx context.Context, jdText string) (types.JobDescription, *TokenUsage, error) {
	systemPrompt, userPrompt := g.getPromptsForExtractJob(jdText)

	object, tokenUsage, err := g.generateObject(
		ctx,
		"extract_job",
		userPrompt,
		systemPrompt,
		attribute.Int("input.job_length", len(jdText)),
	)
	if err != nil {
		return types.JobDescription{}, nil, err
	}

	jd := DecodeJobDescription(object)

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.Int("output.required_skills", len(jd.RequiredSkills)),
			attribute.Int("output.nice_to_have_skills", len(jd.NiceToHaveSkills)),
		)
	}

	return jd, tokenUsage, nil
}

// ExtractResume implements AIProvider for resume extraction
func (g *GeminiProvider) ExtractResume(ctx context.Context, resumeText string) (types.Resume, *TokenUsage, error) {
	systemPrompt, userPrompt := g.getPromptsForExtractResume(resumeText)

	object, tokenUsage, err := g.generateObject(
		ctx,
		"extract_resume",
		userPrompt,
		systemPrompt,
		attribute.Int("input.resume_length", len(resumeText)),
	)
	if err != nil {
		return types.Resume{}, nil, err
	}

	resume := DecodeResume(object)

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.Int("output.skills", len(resume.Skills)),
			attribute.Int("output.tools", len(resume.Tools)),
		)
	}

	return resume, tokenUsage, nil
}

// GenerateAdvice implements AIProvider for tailored candidate advice
func (g *GeminiProvider) GenerateAdvice(ctx context.Context, input types.AdviceInput) (types.Advice, *TokenUsage, error) {
	systemPrompt, userPrompt, err := g.getPromptsForAdvise(input)
	if err != nil {
		return types.Advice{}, nil, err
	}

	object, tokenUsage, err := g.generateObject(
		ctx,
		"advise",
		userPrompt,
		systemPrompt,
		attribute.Int("input.job_length", len(input.JDText)),
		attribute.Int("input.resume_length", len(input.ResumeText)),
	)
	if err != nil {
		return types.Advice{}, nil, err
	}

	advice := DecodeAdvice(object)

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.Int("output.rewritten_bullets", len(advice.RewrittenBullets)),
			attribute.Int("output.skills_to_develop", len(advice.SkillsToDevelop)),
		)
	}

	return advice, tokenUsage, nil
}

// GetCircuitBreakerStats returns circuit breaker statistics
func (g *GeminiProvider) GetCircuitBreakerStats() map[string]any {
	stats := map[string]any{
		"ai_operations":    g.circuitBreaker.GetStats(),
		"model_operations": g.modelBreaker.GetModelStats(),
	}

	// Overall health - both breakers must be healthy
	aiHealthy := g.circuitBreaker.IsHealthy()
	modelHealthy := g.modelBreaker.IsModelHealthy()
	stats["overall_healthy"] = aiHealthy && modelHealthy

	return stats
}

// Close implements AIProvider interface
func (g *GeminiProvider) Close() error {
	// Gemini client doesn't have a Close method in current single-shot usage
	return nil
}

// getPromptsForExtractJob returns system and user prompts for job extraction
func (g *GeminiProvider) getPromptsForExtractJob(jdText string) (string, string) {
	systemPrompt := g.getSystemPrompt("extractJob")
	userPrompt := g.getUserPrompt("extractJob")
	return systemPrompt, fmt.Sprintf(userPrompt, jdText)
}

// getPromptsForExtractResume returns system and user prompts for resume extraction
func (g *GeminiProvider) getPromptsForExtractResume(resumeText string) (string, string) {
	systemPrompt := g.getSystemPrompt("extractResume")
	userPrompt := g.getUserPrompt("extractResume")
	return systemPrompt, fmt.Sprintf(userPrompt, resumeText)
}

// getPromptsForAdvise returns system and user prompts for advice generation.
// The user prompt embeds both the parsed records and the raw texts so the
// model can weigh context the extraction step flattened away.
func (g *GeminiProvider) getPromptsForAdvise(input types.AdviceInput) (string, string, error) {
	systemPrompt := g.getSystemPrompt("advise")
	userPrompt := g.getUserPrompt("advise")

	jdRecord, err := json.MarshalIndent(input.JD, "", "  ")
	if err != nil {
		return "", "", jobmatchErrors.NewInternalError(jobmatchErrors.ErrCodeInvalidFormat,
			"Failed to serialize job description record", err)
	}
	resumeRecord, err := json.MarshalIndent(input.Resume, "", "  ")
	if err != nil {
		return "", "", jobmatchErrors.NewInternalError(jobmatchErrors.ErrCodeInvalidFormat,
			"Failed to serialize resume record", err)
	}

	formatted := fmt.Sprintf(userPrompt, string(jdRecord), string(resumeRecord), input.JDText, input.ResumeText)
	return systemPrompt, formatted, nil
}

// getSystemPrompt returns the appropriate system prompt
func (g *GeminiProvider) getSystemPrompt(promptType string) string {
	loadedPrompts, configPrompts := g.getPrompts(promptType)
	var configSystemPrompts *config.SystemPrompts
	if configPrompts != nil {
		configSystemPrompts = &configPrompts.SystemPrompts
	} else {
		// Create an empty struct to avoid nil pointer panics
		configSystemPrompts = &config.SystemPrompts{}
	}

	switch promptType {
	case "extractJob":
		return resolvePrompt(
			loadedPrompts.SystemPrompts.ExtractJob,
			configSystemPrompts.ExtractJob,
			DefaultSystemPrompts.ExtractJob,
		)
	case "extractResume":
		return resolvePrompt(
			loadedPrompts.SystemPrompts.ExtractResume,
			configSystemPrompts.ExtractResume,
			DefaultSystemPrompts.ExtractResume,
		)
	case "advise":
		return resolvePrompt(
			loadedPrompts.SystemPrompts.Advise,
			configSystemPrompts.Advise,
			DefaultSystemPrompts.Advise,
		)
	default:
		return ""
	}
}

// getUserPrompt returns the appropriate user prompt template
func (g *GeminiProvider) getUserPrompt(promptType string) string {
	loadedPrompts, configPrompts := g.getPrompts(promptType)
	var configUserPrompts *config.UserPrompts
	if configPrompts != nil {
		configUserPrompts = &configPrompts.UserPrompts
	} else {
		// Create an empty struct to avoid nil pointer panics
		configUserPrompts = &config.UserPrompts{}
	}

	switch promptType {
	case "extractJob":
		return resolvePrompt(
			loadedPrompts.UserPrompts.ExtractJob,
			configUserPrompts.ExtractJob,
			DefaultUserPrompts.ExtractJob,
		)
	case "extractResume":
		return resolvePrompt(
			loadedPrompts.UserPrompts.ExtractResume,
			configUserPrompts.ExtractResume,
			DefaultUserPrompts.ExtractResume,
		)
	case "advise":
		return resolvePrompt(
			loadedPrompts.UserPrompts.Advise,
			configUserPrompts.Advise,
			DefaultUserPrompts.Advise,
		)
	default:
		return ""
	}
}

// TokenUsage represents token usage information from AI responses
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

// extractTokenUsage extracts token usage information from Gemini API response
func extractTokenUsage(result *genai.GenerateContentResponse) *TokenUsage {
	if result == nil || result.UsageMetadata == nil {
		return nil
	}

	usage := result.UsageMetadata
	return &TokenUsage{
		InputTokens:  int64(usage.PromptTokenCount),
		OutputTokens: int64(usage.CandidatesTokenCount),
		TotalTokens:  int64(usage.TotalTokenCount),
	}
}

// getAIModelCheckTimeout returns the configured AI model check timeout
func getAIModelCheckTimeout() time.Duration {
	return 10 * time.Second
}

// decodeObjectResponse parses a model response body into a JSON object. A body
// that is not a JSON object surfaces as MALFORMED_RESPONSE with a truncated
// preview of the payload attached for debugging.
func decodeObjectResponse(operationName, body string) (map[string]any, error) {
	var object map[string]any
	if err := json.Unmarshal([]byte(body), &object); err != nil {
		return nil, jobmatchErrors.NewAIError(jobmatchErrors.ErrCodeMalformedResponse,
			"Failed to parse AI response for "+operationName, err).
			WithContext("response_preview", preview(body, 200))
	}
	return object, nil
}

// preview truncates a response body for error context without dumping the
// whole payload into logs.
func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// getPrompts returns the appropriate prompts for the operation, prioritizing loaded content over config
func (g *GeminiProvider) getPrompts(operationType string) (config.OperationLoadedPrompts, *config.PromptConfig) {
	loadedPrompts := config.GetPromptsForOperation(operationType)
	configPrompts := &g.config.CustomPrompts
	return loadedPrompts, configPrompts
}

// resolvePrompt selects the correct prompt string based on a clear priority order:
// 1. A prompt loaded from a file.
// 2. A prompt defined directly in the configuration.
// 3. A hardcoded default prompt.
func resolvePrompt(loadedFromFile, fromConfig, fromDefault string) string {
	if loadedFromFile != "" {
		return loadedFromFile
	}
	if fromConfig != "" {
		return fromConfig
	}
	return fromDefault
}
