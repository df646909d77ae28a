package service

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ModelConfig selects the completion model and generation parameters for a
// prompt.
type ModelConfig struct {
	Model       string  `json:"model"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

// PromptConfig is one named entry of the prompt configuration file. The
// user prompt template carries {content} and {knowledge} placeholders.
// Weights is only used by the evaluation prompt and configures the rubric
// aggregation; when absent, dimensions are weighted equally.
type PromptConfig struct {
	SystemPrompt       string             `json:"system_prompt"`
	UserPromptTemplate string             `json:"user_prompt_template"`
	ModelConfig        ModelConfig        `json:"model_config"`
	Weights            map[string]float64 `json:"weights,omitempty"`
}

// PromptManager loads prompt templates from a JSON configuration file at
// startup and serves them as immutable read-only state.
type PromptManager struct {
	path    string
	prompts map[string]PromptConfig
}

func NewPromptManager(path string) (*PromptManager, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prompt configuration file %q not found: %w", path, err)
	}

	var prompts map[string]PromptConfig
	if err := json.Unmarshal(data, &prompts); err != nil {
		return nil, fmt.Errorf("invalid JSON in prompt configuration %q: %w", path, err)
	}
	if len(prompts) == 0 {
		return nil, fmt.Errorf("prompt configuration %q is empty", path)
	}

	return &PromptManager{path: path, prompts: prompts}, nil
}

// Get returns the prompt configuration for the given name.
func (m *PromptManager) Get(name string) (PromptConfig, error) {
	cfg, ok := m.prompts[name]
	if !ok {
		return PromptConfig{}, fmt.Errorf("prompt type %q not found in configuration", name)
	}
	return cfg, nil
}

// All returns the loaded configuration for the config inspection endpoint.
func (m *PromptManager) All() map[string]PromptConfig {
	return m.prompts
}

// Count returns the number of loaded prompt entries.
func (m *PromptManager) Count() int { return len(m.prompts) }

// FillTemplate substitutes named {placeholder} values into a template.
func FillTemplate(template string, values map[string]string) string {
	out := template
	for key, value := range values {
		out = strings.ReplaceAll(out, "{"+key+"}", value)
	}
	return out
}
