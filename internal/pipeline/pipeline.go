package pipeline

import (
	"context"

	"jobmatch/internal/ai"
	"jobmatch/internal/errors"
	"jobmatch/internal/match"
	"jobmatch/internal/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// Runner drives a full match: two concurrent extractions, deterministic
// scoring, then advice generation. Each stage uses its own provider so the
// operations can run on different models with independent retry and breaker
// settings.
type Runner struct {
	extractJob    ai.AIProvider
	extractResume ai.AIProvider
	advise        ai.AIProvider
	logger        *errors.Logger
}

// NewRunner creates a pipeline runner from per-operation providers.
func NewRunner(extractJob, extractResume, advise ai.AIProvider, logger *errors.Logger) *Runner {
	return &Runner{
		extractJob:    extractJob,
		extractResume: extractResume,
		advise:        advise,
		logger:        logger,
	}
}

// Usage aggregates token usage across the pipeline's model calls.
type Usage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

func (u *Usage) add(t *ai.TokenUsage) {
	if t == nil {
		return
	}
	u.InputTokens += t.InputTokens
	u.OutputTokens += t.OutputTokens
	u.TotalTokens += t.TotalTokens
}

// Run executes the full match pipeline. The two extractions run concurrently;
// if either fails the other is cancelled and the run aborts. Advice generation
// failure also aborts the run rather than returning a partial report, so a
// report always carries all four sections or the caller gets an error.
func (r *Runner) Run(ctx context.Context, input types.MatchInput) (types.MatchReport, *Usage, error) {
	tracer := otel.Tracer("jobmatch.pipeline")
	ctx, span := tracer.Start(ctx, "pipeline.run")
	defer span.End()

	span.SetAttributes(
		attribute.Int("input.job_length", len(input.JDText)),
		attribute.Int("input.resume_length", len(input.ResumeText)),
	)

	usage := &Usage{}

	var (
		jd          types.JobDescription
		resume      types.Resume
		jdUsage     *ai.TokenUsage
		resumeUsage *ai.TokenUsage
	)

	g, groupCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jd, jdUsage, err = r.extractJob.ExtractJobDescription(groupCtx, input.JDText)
		return err
	})
	g.Go(func() error {
		var err error
		resume, resumeUsage, err = r.extractResume.ExtractResume(groupCtx, input.ResumeText)
		return err
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		r.logger.LogError(err, "Structured extraction failed")
		return types.MatchReport{}, nil, err
	}
	usage.add(jdUsage)
	usage.add(resumeUsage)

	matchResult := match.Score(jd, resume)
	span.SetAttributes(attribute.Int("match.overall_score", matchResult.OverallScore))

	r.logger.Debug("Deterministic scoring complete",
		"overall_score", matchResult.OverallScore,
		"matched_required", len(matchResult.MatchedRequiredSkills),
		"missing_required", len(matchResult.MissingRequiredSkills))

	advice, adviceUsage, err := r.advise.GenerateAdvice(ctx, types.AdviceInput{
		JD:         jd,
		Resume:     resume,
		JDText:     input.JDText,
		ResumeText: input.ResumeText,
	})
	if err != nil {
		span.RecordError(err)
		r.logger.LogError(err, "Advice generation failed")
		return types.MatchReport{}, nil, err
	}
	usage.add(adviceUsage)

	span.SetAttributes(attribute.Int64("ai.tokens.total", usage.TotalTokens))

	return types.MatchReport{
		JD:     jd,
		Resume: resume,
		Match:  matchResult,
		Advice: advice,
	}, usage, nil
}

// Close releases the underlying providers. Errors are collected so one
// failing provider does not skip the rest.
func (r *Runner) Close() error {
	var firstErr error
	for _, p := range []ai.AIProvider{r.extractJob, r.extractResume, r.advise} {
		if p == nil {
			continue
		}
		if err := p.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
