package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"jobmatch/internal/ai"
	jobmatchErrors "jobmatch/internal/errors"
	"jobmatch/internal/observability"
	"jobmatch/internal/pdftext"
	"jobmatch/internal/pipeline"
	"jobmatch/internal/types"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// createMatchHandler wraps the match handler with observability
func (s *Server) createMatchHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("jobmatch.api")
		ctx, span := tracer.Start(ctx, "api.match")
		defer span.End()

		// Parse request
		var req MatchRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		// Validation
		if strings.TrimSpace(req.JDText) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job description", "jdText field is required", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.ResumeText) == "" {
			err := fmt.Errorf("missing resume")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume", "resumeText field is required", http.StatusBadRequest)
			return
		}

		// Size validation
		if len(req.JDText) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("job description too large: %d chars", len(req.JDText))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Job description too large", fmt.Sprintf("jdText exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}
		if len(req.ResumeText) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("resume too large: %d chars", len(req.ResumeText))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume too large", fmt.Sprintf("resumeText exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}

		input := types.MatchInput{
			JDText:     req.JDText,
			ResumeText: req.ResumeText,
		}

		s.executeMatch(ctx, span, om, w, input)
	}
}

// createMatchPDFHandler accepts a multipart form with a jdText field and a
// resume PDF file, extracts the resume text and runs the same match pipeline
// as the JSON endpoint.
func (s *Server) createMatchPDFHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("jobmatch.api")
		ctx, span := tracer.Start(ctx, "api.match_pdf")
		defer span.End()

		if err := r.ParseMultipartForm(s.MaxRequestSize); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid multipart request", err.Error(), http.StatusBadRequest)
			return
		}

		jdText := r.FormValue("jdText")
		if strings.TrimSpace(jdText) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job description", "jdText form field is required", http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("resume")
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume file", "resume file field is required", http.StatusBadRequest)
			return
		}
		defer func() {
			if err := file.Close(); err != nil {
				s.Logger.Warn("Failed to close uploaded file", "error", err)
			}
		}()

		if s.MaxPDFSize > 0 && header.Size > s.MaxPDFSize {
			err := fmt.Errorf("uploaded PDF too large: %d bytes", header.Size)
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume PDF too large", fmt.Sprintf("uploaded file exceeds size limit of %d bytes", s.MaxPDFSize), http.StatusBadRequest)
			return
		}

		data, err := io.ReadAll(file)
		if err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Failed to read resume file", err.Error(), http.StatusBadRequest)
			return
		}

		resumeText, err := pdftext.Extract(data)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "pdf_extraction"))
			switch jobmatchErrors.CodeOf(err) {
			case jobmatchErrors.ErrCodeNoTextExtracted:
				writeErrorResponse(w, "No text in resume PDF", "the PDF has no extractable text layer (scanned or image-only documents are not supported)", http.StatusUnprocessableEntity)
			default:
				writeErrorResponse(w, "Invalid resume PDF", err.Error(), http.StatusBadRequest)
			}
			return
		}

		span.SetAttributes(
			attribute.String("request.resume_filename", header.Filename),
			attribute.Int64("request.resume_file_bytes", header.Size),
		)

		input := types.MatchInput{
			JDText:     jdText,
			ResumeText: resumeText,
		}

		s.executeMatch(ctx, span, om, w, input)
	}
}

// executeMatch runs the match pipeline for the given input and writes the
// report or an error response. Shared by the JSON and PDF endpoints.
func (s *Server) executeMatch(ctx context.Context, span oteltrace.Span, om *observability.ObservabilityManager, w http.ResponseWriter, input types.MatchInput) {
	span.SetAttributes(
		attribute.Int("request.job_length", len(input.JDText)),
		attribute.Int("request.resume_length", len(input.ResumeText)),
		attribute.String("operation", "match"),
	)

	runner, err := s.createPipelineRunner()
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("error.type", "service_creation"))
		writeErrorResponse(w, "Failed to create AI services", err.Error(), http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := runner.Close(); err != nil {
			s.Logger.Warn("Failed to close pipeline providers", "error", err)
		}
	}()

	// Track the full pipeline with observability and aggregated token usage
	metrics := om.GetMetrics()
	var report types.MatchReport
	err = metrics.TrackAIOperationWithTokens(ctx, "match", func(ctx context.Context) *observability.AIOperationResult {
		output, usage, runErr := runner.Run(ctx, input)
		report = output
		var tokenUsage *observability.TokenUsage
		if usage != nil {
			tokenUsage = &observability.TokenUsage{
				InputTokens:  usage.InputTokens,
				OutputTokens: usage.OutputTokens,
				TotalTokens:  usage.TotalTokens,
			}
		}
		return &observability.AIOperationResult{
			Error:      runErr,
			TokenUsage: tokenUsage,
		}
	}, om)

	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("error.type", "ai_processing"))
		metrics.RecordBusinessMetric(ctx, "match_scored", false, om,
			attribute.String("error", err.Error()))
		writeErrorResponse(w, "Failed to match resume against job description", err.Error(), http.StatusInternalServerError)
		return
	}

	// Record success metrics for each pipeline stage
	metrics.RecordBusinessMetric(ctx, "job_extracted", true, om,
		attribute.Int("jd.required_skills", len(report.JD.RequiredSkills)),
		attribute.Int("jd.nice_to_have_skills", len(report.JD.NiceToHaveSkills)))
	metrics.RecordBusinessMetric(ctx, "resume_extracted", true, om,
		attribute.Int("resume.skills", len(report.Resume.Skills)))
	metrics.RecordBusinessMetric(ctx, "advice_generated", true, om,
		attribute.Int("advice.rewritten_bullets", len(report.Advice.RewrittenBullets)))
	metrics.RecordBusinessMetric(ctx, "match_scored", true, om,
		attribute.Int("match.overall_score", report.Match.OverallScore),
		attribute.Int("match.missing_required", len(report.Match.MissingRequiredSkills)))
	metrics.RecordMatchScore(ctx, report.Match.OverallScore, om)

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Int("match.overall_score", report.Match.OverallScore),
	)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		span.RecordError(err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// createPipelineRunner builds a pipeline runner from per-operation AI services
func (s *Server) createPipelineRunner() (*pipeline.Runner, error) {
	extractJobConfig := s.AppConfig.GetExtractJobConfig()
	extractJobService, err := ai.NewService(&extractJobConfig, "extractJob", s.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create extractJob service: %w", err)
	}

	extractResumeConfig := s.AppConfig.GetExtractResumeConfig()
	extractResumeService, err := ai.NewService(&extractResumeConfig, "extractResume", s.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create extractResume service: %w", err)
	}

	adviseConfig := s.AppConfig.GetAdviseConfig()
	adviseService, err := ai.NewService(&adviseConfig, "advise", s.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create advise service: %w", err)
	}

	return pipeline.NewRunner(
		extractJobService.Provider,
		extractResumeService.Provider,
		adviseService.Provider,
		s.Logger,
	), nil
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
