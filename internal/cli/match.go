package cli

import (
	"context"
	"fmt"

	"jobmatch/internal/ai"
	"jobmatch/internal/common"
	"jobmatch/internal/pdftext"
	"jobmatch/internal/pipeline"
	"jobmatch/internal/types"
	"jobmatch/internal/utils"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match [jd-file] [resume-file]",
	Short: "Match a resume against a job description",
	Long: `Match a resume against a job description using AI.
The command takes two arguments: the path to the job description file and
the path to the resume file. Plain text and PDF files are supported; PDF
inputs are converted to text before processing.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if matchConfig.OutputFormat == "" {
			matchConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(matchConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runMatch,
}

var matchConfig common.CommandConfig

func init() {
	matchCmd.Flags().StringVarP(&matchConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	matchCmd.Flags().StringVar(&matchConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = matchCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	// Enforce input size limits before reading anything
	for _, arg := range args {
		maxSize := cfg.App.MaxFileSize
		if pdftext.IsPDF(arg) {
			maxSize = cfg.App.MaxPDFSize
		}
		if err := utils.ValidateFileSize(arg, maxSize); err != nil {
			return err
		}
	}

	// Create AI services for the three pipeline operations
	extractJobConfig := cfg.GetExtractJobConfig()
	extractJobService, err := ai.NewService(&extractJobConfig, "extractJob", logger)
	if err != nil {
		return fmt.Errorf("failed to create extractJob service: %w", err)
	}

	extractResumeConfig := cfg.GetExtractResumeConfig()
	extractResumeService, err := ai.NewService(&extractResumeConfig, "extractResume", logger)
	if err != nil {
		return fmt.Errorf("failed to create extractResume service: %w", err)
	}

	adviseConfig := cfg.GetAdviseConfig()
	adviseService, err := ai.NewService(&adviseConfig, "advise", logger)
	if err != nil {
		return fmt.Errorf("failed to create advise service: %w", err)
	}

	runner := pipeline.NewRunner(
		extractJobService.Provider,
		extractResumeService.Provider,
		adviseService.Provider,
		logger,
	)
	defer func() {
		if err := runner.Close(); err != nil {
			logger.Warn("Failed to close pipeline providers", "error", err)
		}
	}()

	createInput := func(contents []string) (types.MatchInput, error) {
		if len(contents) != 2 {
			return types.MatchInput{}, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}
		return types.MatchInput{
			JDText:     contents[0],
			ResumeText: contents[1],
		}, nil
	}

	logDetails := func(input types.MatchInput, cfg common.CommandConfig) {
		logger.Info("Starting resume match",
			"job_chars", len(input.JDText),
			"resume_chars", len(input.ResumeText),
			"output_format", cfg.OutputFormat)
	}

	// Create a wrapper function that runs the full pipeline
	matchOperation := func(ctx context.Context, input types.MatchInput) (types.MatchReport, *ai.TokenUsage, error) {
		report, usage, err := runner.Run(ctx, input)
		if err != nil {
			return types.MatchReport{}, nil, err
		}
		return report, &ai.TokenUsage{
			InputTokens:  usage.InputTokens,
			OutputTokens: usage.OutputTokens,
			TotalTokens:  usage.TotalTokens,
		}, nil
	}

	err = common.RunAICommand(
		cmd.Context(),
		logger,
		matchConfig,
		args,
		createInput,
		matchOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to match resume: %w", err)
	}
	logger.Info("Resume match completed successfully")
	return nil
}
