package config

import (
	"sync"
)

var (
	loadedPrompts   AllLoadedPrompts
	loadedPromptsMu sync.RWMutex
)

// LoadedPrompts holds the content of prompts loaded from files
type LoadedPrompts struct {
	SystemPrompts LoadedSystemPrompts
	UserPrompts   LoadedUserPrompts
}

// LoadedSystemPrompts contains loaded system-level instructions
type LoadedSystemPrompts struct {
	ExtractJob    string
	ExtractResume string
	Advise        string
}

// LoadedUserPrompts contains loaded user-level prompt templates
type LoadedUserPrompts struct {
	ExtractJob    string
	ExtractResume string
	Advise        string
}

// OperationLoadedPrompts holds loaded prompts for a specific operation
type OperationLoadedPrompts struct {
	SystemPrompts LoadedSystemPrompts
	UserPrompts   LoadedUserPrompts
}

// AllLoadedPrompts holds all loaded prompts for all operations
type AllLoadedPrompts struct {
	Global        LoadedPrompts
	ExtractJob    OperationLoadedPrompts
	ExtractResume OperationLoadedPrompts
	Advise        OperationLoadedPrompts
}

// GetPromptsForOperation returns a copy of the loaded prompts for an operation
// type. The read lock makes this safe against concurrent reloads from the
// prompt file watcher.
func GetPromptsForOperation(operationType string) OperationLoadedPrompts {
	loadedPromptsMu.RLock()
	defer loadedPromptsMu.RUnlock()

	switch operationType {
	case "extractJob":
		return loadedPrompts.ExtractJob
	case "extractResume":
		return loadedPrompts.ExtractResume
	case "advise":
		return loadedPrompts.Advise
	default:
		return OperationLoadedPrompts{
			SystemPrompts: loadedPrompts.Global.SystemPrompts,
			UserPrompts:   loadedPrompts.Global.UserPrompts,
		}
	}
}

// setLoadedPrompts replaces the loaded prompt set atomically.
func setLoadedPrompts(prompts AllLoadedPrompts) {
	loadedPromptsMu.Lock()
	defer loadedPromptsMu.Unlock()
	loadedPrompts = prompts
}
