package config

// applyOperationDefaults applies global defaults to operation-specific configuration
func (c *Config) applyOperationDefaults(opCfg *OperationAIConfig) {
	if opCfg.Provider == "" {
		opCfg.Provider = c.AI.Provider
	}
	if opCfg.Model == "" {
		opCfg.Model = c.AI.Model
	}
	if opCfg.Timeout == nil {
		opCfg.Timeout = &c.AI.Timeout
	}
	if opCfg.APIKey == "" {
		opCfg.APIKey = c.AI.APIKey
	}
	if opCfg.MaxRetries == nil {
		opCfg.MaxRetries = &c.AI.MaxRetries
	}
	if opCfg.Temperature == nil {
		opCfg.Temperature = &c.AI.Temperature
	}
	// UseSystemPrompts: apply global default only if not explicitly set
	if opCfg.UseSystemPrompts == nil {
		opCfg.UseSystemPrompts = &c.AI.UseSystemPrompts
	}
}

// GetExtractJobConfig returns the AI configuration for job extraction with fallback to global config
func (c *Config) GetExtractJobConfig() OperationAIConfig {
	config := c.AI.ExtractJob

	// Apply common defaults
	c.applyOperationDefaults(&config)

	// Apply extractJob-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.ExtractJob == "" {
		config.CustomPrompts.SystemPrompts.ExtractJob = c.AI.CustomPrompts.SystemPrompts.ExtractJob
	}
	if config.CustomPrompts.UserPrompts.ExtractJob == "" {
		config.CustomPrompts.UserPrompts.ExtractJob = c.AI.CustomPrompts.UserPrompts.ExtractJob
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.ExtractJobFile == "" {
		config.CustomPrompts.SystemPrompts.ExtractJobFile = c.AI.CustomPrompts.SystemPrompts.ExtractJobFile
	}
	if config.CustomPrompts.UserPrompts.ExtractJobFile == "" {
		config.CustomPrompts.UserPrompts.ExtractJobFile = c.AI.CustomPrompts.UserPrompts.ExtractJobFile
	}

	return config
}

// GetExtractResumeConfig returns the AI configuration for resume extraction with fallback to global config
func (c *Config) GetExtractResumeConfig() OperationAIConfig {
	config := c.AI.ExtractResume

	// Apply common defaults
	c.applyOperationDefaults(&config)

	// Apply extractResume-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.ExtractResume == "" {
		config.CustomPrompts.SystemPrompts.ExtractResume = c.AI.CustomPrompts.SystemPrompts.ExtractResume
	}
	if config.CustomPrompts.UserPrompts.ExtractResume == "" {
		config.CustomPrompts.UserPrompts.ExtractResume = c.AI.CustomPrompts.UserPrompts.ExtractResume
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.ExtractResumeFile == "" {
		config.CustomPrompts.SystemPrompts.ExtractResumeFile = c.AI.CustomPrompts.SystemPrompts.ExtractResumeFile
	}
	if config.CustomPrompts.UserPrompts.ExtractResumeFile == "" {
		config.CustomPrompts.UserPrompts.ExtractResumeFile = c.AI.CustomPrompts.UserPrompts.ExtractResumeFile
	}

	return config
}

// GetAdviseConfig returns the AI configuration for advice generation with fallback to global config
func (c *Config) GetAdviseConfig() OperationAIConfig {
	config := c.AI.Advise

	// Apply common defaults
	c.applyOperationDefaults(&config)

	// Apply advise-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.Advise == "" {
		config.CustomPrompts.SystemPrompts.Advise = c.AI.CustomPrompts.SystemPrompts.Advise
	}
	if config.CustomPrompts.UserPrompts.Advise == "" {
		config.CustomPrompts.UserPrompts.Advise = c.AI.CustomPrompts.UserPrompts.Advise
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.AdviseFile == "" {
		config.CustomPrompts.SystemPrompts.AdviseFile = c.AI.CustomPrompts.SystemPrompts.AdviseFile
	}
	if config.CustomPrompts.UserPrompts.AdviseFile == "" {
		config.CustomPrompts.UserPrompts.AdviseFile = c.AI.CustomPrompts.UserPrompts.AdviseFile
	}

	return config
}

// GetLoadedExtractJobPrompts returns a copy of the loaded prompts for job extraction
func (c *Config) GetLoadedExtractJobPrompts() OperationLoadedPrompts {
	return GetPromptsForOperation("extractJob")
}

// GetLoadedExtractResumePrompts returns a copy of the loaded prompts for resume extraction
func (c *Config) GetLoadedExtractResumePrompts() OperationLoadedPrompts {
	return GetPromptsForOperation("extractResume")
}

// GetLoadedAdvisePrompts returns a copy of the loaded prompts for advice generation
func (c *Config) GetLoadedAdvisePrompts() OperationLoadedPrompts {
	return GetPromptsForOperation("advise")
}
