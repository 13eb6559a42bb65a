package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// loadPromptsFromFiles loads custom prompts from external files if file paths
// are specified, replacing the active prompt set. Called at startup and again
// by the prompt watcher on file changes.
func (c *Config) loadPromptsFromFiles() error {
	log.Println("[CONFIG] Starting custom prompt loading from files")

	var prompts AllLoadedPrompts

	// Load global prompts
	if err := c.loadSystemPromptsFromFiles(&c.AI.CustomPrompts.SystemPrompts, &prompts.Global.SystemPrompts); err != nil {
		return fmt.Errorf("failed to load global system prompts: %w", err)
	}
	if err := c.loadUserPromptsFromFiles(&c.AI.CustomPrompts.UserPrompts, &prompts.Global.UserPrompts); err != nil {
		return fmt.Errorf("failed to load global user prompts: %w", err)
	}

	// Load operation-specific prompts
	if err := c.loadSystemPromptsFromFiles(&c.AI.ExtractJob.CustomPrompts.SystemPrompts, &prompts.ExtractJob.SystemPrompts); err != nil {
		return fmt.Errorf("failed to load extractJob system prompts: %w", err)
	}
	if err := c.loadUserPromptsFromFiles(&c.AI.ExtractJob.CustomPrompts.UserPrompts, &prompts.ExtractJob.UserPrompts); err != nil {
		return fmt.Errorf("failed to load extractJob user prompts: %w", err)
	}

	if err := c.loadSystemPromptsFromFiles(&c.AI.ExtractResume.CustomPrompts.SystemPrompts, &prompts.ExtractResume.SystemPrompts); err != nil {
		return fmt.Errorf("failed to load extractResume system prompts: %w", err)
	}
	if err := c.loadUserPromptsFromFiles(&c.AI.ExtractResume.CustomPrompts.UserPrompts, &prompts.ExtractResume.UserPrompts); err != nil {
		return fmt.Errorf("failed to load extractResume user prompts: %w", err)
	}

	if err := c.loadSystemPromptsFromFiles(&c.AI.Advise.CustomPrompts.SystemPrompts, &prompts.Advise.SystemPrompts); err != nil {
		return fmt.Errorf("failed to load advise system prompts: %w", err)
	}
	if err := c.loadUserPromptsFromFiles(&c.AI.Advise.CustomPrompts.UserPrompts, &prompts.Advise.UserPrompts); err != nil {
		return fmt.Errorf("failed to load advise user prompts: %w", err)
	}

	setLoadedPrompts(prompts)

	// Log summary of prompt sources after loading
	c.logPromptLoadingSummary(&prompts)

	return nil
}

// loadSystemPromptsFromFiles loads system prompts from files if file paths are specified
func (c *Config) loadSystemPromptsFromFiles(prompts *SystemPrompts, target *LoadedSystemPrompts) error {
	if prompts.ExtractJobFile != "" {
		content, err := c.loadPromptFromFile(prompts.ExtractJobFile, "system", "extractJob")
		if err != nil {
			return err
		}
		target.ExtractJob = content
	}

	if prompts.ExtractResumeFile != "" {
		content, err := c.loadPromptFromFile(prompts.ExtractResumeFile, "system", "extractResume")
		if err != nil {
			return err
		}
		target.ExtractResume = content
	}

	if prompts.AdviseFile != "" {
		content, err := c.loadPromptFromFile(prompts.AdviseFile, "system", "advise")
		if err != nil {
			return err
		}
		target.Advise = content
	}

	return nil
}

// loadUserPromptsFromFiles loads user prompts from files if file paths are specified
func (c *Config) loadUserPromptsFromFiles(prompts *UserPrompts, target *LoadedUserPrompts) error {
	if prompts.ExtractJobFile != "" {
		content, err := c.loadPromptFromFile(prompts.ExtractJobFile, "user", "extractJob")
		if err != nil {
			return err
		}
		target.ExtractJob = content
	}

	if prompts.ExtractResumeFile != "" {
		content, err := c.loadPromptFromFile(prompts.ExtractResumeFile, "user", "extractResume")
		if err != nil {
			return err
		}
		target.ExtractResume = content
	}

	if prompts.AdviseFile != "" {
		content, err := c.loadPromptFromFile(prompts.AdviseFile, "user", "advise")
		if err != nil {
			return err
		}
		target.Advise = content
	}

	return nil
}

// loadPromptFromFile loads a prompt from a file with proper error handling and logging
func (c *Config) loadPromptFromFile(filePath, promptType, operation string) (string, error) {
	// Resolve relative paths
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %s %s prompt file '%s': %w", promptType, operation, filePath, err)
	}

	// Check if file exists
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return "", fmt.Errorf("%s %s prompt file not found: %s", promptType, operation, absPath)
	}

	// Read file content
	content, err := os.ReadFile(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s %s prompt file '%s': %w", promptType, operation, absPath, err)
	}

	// Validate content is not empty
	trimmedContent := strings.TrimSpace(string(content))
	if trimmedContent == "" {
		return "", fmt.Errorf("%s %s prompt file '%s' is empty", promptType, operation, absPath)
	}

	// Log successful loading
	log.Printf("[CONFIG] Successfully loaded %s %s prompt from file: %s (%d characters)",
		promptType, operation, absPath, len(trimmedContent))

	return trimmedContent, nil
}

// promptFilePaths returns every configured prompt file path, deduplicated.
// The prompt watcher uses this set to know what to watch.
func (c *Config) promptFilePaths() []string {
	candidates := []string{
		c.AI.CustomPrompts.SystemPrompts.ExtractJobFile,
		c.AI.CustomPrompts.SystemPrompts.ExtractResumeFile,
		c.AI.CustomPrompts.SystemPrompts.AdviseFile,
		c.AI.CustomPrompts.UserPrompts.ExtractJobFile,
		c.AI.CustomPrompts.UserPrompts.ExtractResumeFile,
		c.AI.CustomPrompts.UserPrompts.AdviseFile,
		c.AI.ExtractJob.CustomPrompts.SystemPrompts.ExtractJobFile,
		c.AI.ExtractJob.CustomPrompts.UserPrompts.ExtractJobFile,
		c.AI.ExtractResume.CustomPrompts.SystemPrompts.ExtractResumeFile,
		c.AI.ExtractResume.CustomPrompts.UserPrompts.ExtractResumeFile,
		c.AI.Advise.CustomPrompts.SystemPrompts.AdviseFile,
		c.AI.Advise.CustomPrompts.UserPrompts.AdviseFile,
	}

	seen := make(map[string]struct{}, len(candidates))
	var paths []string
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		paths = append(paths, p)
	}
	return paths
}

// validatePromptFiles validates that prompt files exist and are readable before loading
func (c *Config) validatePromptFiles() error {
	var validationErrors []string

	// Helper function to validate a file path
	validateFile := func(filePath, promptType, operation string) {
		if filePath == "" {
			return // No file specified, skip validation
		}

		absPath, err := filepath.Abs(filePath)
		if err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("invalid path for %s %s prompt: %s", promptType, operation, filePath))
			return
		}

		if _, err := os.Stat(absPath); os.IsNotExist(err) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s %s prompt file not found: %s", promptType, operation, absPath))
		}
	}

	// Validate global prompt files
	validateFile(c.AI.CustomPrompts.SystemPrompts.ExtractJobFile, "system", "extractJob")
	validateFile(c.AI.CustomPrompts.SystemPrompts.ExtractResumeFile, "system", "extractResume")
	validateFile(c.AI.CustomPrompts.SystemPrompts.AdviseFile, "system", "advise")
	validateFile(c.AI.CustomPrompts.UserPrompts.ExtractJobFile, "user", "extractJob")
	validateFile(c.AI.CustomPrompts.UserPrompts.ExtractResumeFile, "user", "extractResume")
	validateFile(c.AI.CustomPrompts.UserPrompts.AdviseFile, "user", "advise")

	// Validate operation-specific prompt files
	validateFile(c.AI.ExtractJob.CustomPrompts.SystemPrompts.ExtractJobFile, "extractJob system", "extractJob")
	validateFile(c.AI.ExtractJob.CustomPrompts.UserPrompts.ExtractJobFile, "extractJob user", "extractJob")
	validateFile(c.AI.ExtractResume.CustomPrompts.SystemPrompts.ExtractResumeFile, "extractResume system", "extractResume")
	validateFile(c.AI.ExtractResume.CustomPrompts.UserPrompts.ExtractResumeFile, "extractResume user", "extractResume")
	validateFile(c.AI.Advise.CustomPrompts.SystemPrompts.AdviseFile, "advise system", "advise")
	validateFile(c.AI.Advise.CustomPrompts.UserPrompts.AdviseFile, "advise user", "advise")

	if len(validationErrors) > 0 {
		return fmt.Errorf("prompt file validation failed:\n%s", strings.Join(validationErrors, "\n"))
	}

	return nil
}

// logPromptLoadingSummary logs a summary of loaded prompts
func (c *Config) logPromptLoadingSummary(prompts *AllLoadedPrompts) {
	log.Println("[CONFIG] === Custom Prompt Loading Summary ===")

	promptChecks := []struct {
		content string
		message string
	}{
		{prompts.Global.SystemPrompts.ExtractJob, "[CONFIG] Global system extractJob prompt: loaded from file"},
		{prompts.Global.SystemPrompts.ExtractResume, "[CONFIG] Global system extractResume prompt: loaded from file"},
		{prompts.Global.SystemPrompts.Advise, "[CONFIG] Global system advise prompt: loaded from file"},
		{prompts.Global.UserPrompts.ExtractJob, "[CONFIG] Global user extractJob prompt: loaded from file"},
		{prompts.Global.UserPrompts.ExtractResume, "[CONFIG] Global user extractResume prompt: loaded from file"},
		{prompts.Global.UserPrompts.Advise, "[CONFIG] Global user advise prompt: loaded from file"},
		{prompts.ExtractJob.SystemPrompts.ExtractJob, "[CONFIG] ExtractJob-specific system prompt: loaded from file"},
		{prompts.ExtractJob.UserPrompts.ExtractJob, "[CONFIG] ExtractJob-specific user prompt: loaded from file"},
		{prompts.ExtractResume.SystemPrompts.ExtractResume, "[CONFIG] ExtractResume-specific system prompt: loaded from file"},
		{prompts.ExtractResume.UserPrompts.ExtractResume, "[CONFIG] ExtractResume-specific user prompt: loaded from file"},
		{prompts.Advise.SystemPrompts.Advise, "[CONFIG] Advise-specific system prompt: loaded from file"},
		{prompts.Advise.UserPrompts.Advise, "[CONFIG] Advise-specific user prompt: loaded from file"},
	}

	promptCount := 0
	for _, check := range promptChecks {
		if check.content != "" {
			log.Println(check.message)
			promptCount++
		}
	}

	if promptCount == 0 {
		log.Println("[CONFIG] No custom prompts loaded - using built-in defaults")
	} else {
		log.Printf("[CONFIG] Total custom prompts loaded: %d", promptCount)
	}

	log.Println("[CONFIG] ==========================================")
}
