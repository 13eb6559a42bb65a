package cli

import (
	"encoding/json"
	"fmt"

	"jobmatch/internal/common"
	"jobmatch/internal/match"
	"jobmatch/internal/types"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [jd-json] [resume-json]",
	Short: "Score previously extracted job and resume data offline",
	Long: `Compute the deterministic match score from already-extracted data.
The command takes two arguments: a JSON file holding an extracted job
description and a JSON file holding an extracted resume (the "jd" and
"resume" sections of a match report). No AI calls are made.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if scoreConfig.OutputFormat == "" {
			scoreConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(scoreConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScore,
}

var scoreConfig common.CommandConfig

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runScore(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	fileProcessor := common.NewFileProcessor(logger)
	contents, err := fileProcessor.ValidateAndReadFiles(args...)
	if err != nil {
		return err
	}

	var jd types.JobDescription
	if err := json.Unmarshal([]byte(contents[0]), &jd); err != nil {
		return fmt.Errorf("failed to parse job description JSON %s: %w", args[0], err)
	}

	var resume types.Resume
	if err := json.Unmarshal([]byte(contents[1]), &resume); err != nil {
		return fmt.Errorf("failed to parse resume JSON %s: %w", args[1], err)
	}

	logger.Info("Scoring extracted data",
		"jd_title", jd.Title,
		"required_skills", len(jd.RequiredSkills),
		"resume_skills", len(resume.Skills),
		"output_format", scoreConfig.OutputFormat)

	result := match.Score(jd, resume)

	logger.Info("Scoring completed",
		"overall_score", result.OverallScore,
		"matched_required", len(result.MatchedRequiredSkills),
		"missing_required", len(result.MissingRequiredSkills))

	outputHandler := common.NewOutputHandler(logger)
	return outputHandler.HandleOutput(result, scoreConfig)
}
