// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/diffwatch/reviewbot/internal/domain/model"
)

// defaultModel is used when REVIEWBOT_MODEL is unset.
const defaultModel = "claude-sonnet-4-20250514"

// defaultMaxTokens bounds each model response.
const defaultMaxTokens = 2048

// Config holds the application configuration loaded from environment variables.
type Config struct {
	GitHubToken     string
	AnthropicAPIKey string
	Model           string
	ExcludePatterns []string
	MaxTokens       int64
	EventPath       string
}

// Load reads configuration from environment variables and returns a
// validated Config. REVIEWBOT_GITHUB_TOKEN and REVIEWBOT_ANTHROPIC_API_KEY
// are required; the run aborts before any network call without them.
// Optional variables: REVIEWBOT_MODEL, REVIEWBOT_EXCLUDE (comma-separated
// glob patterns, entries trimmed), REVIEWBOT_MAX_COMMENT_TOKENS.
// GITHUB_EVENT_PATH is set by the workflow runner and points at the
// triggering event payload.
func Load() (*Config, error) {
	token := os.Getenv("REVIEWBOT_GITHUB_TOKEN")
	if token == "" {
		return nil, model.NewPipelineError(model.KindConfig, "load config",
			fmt.Errorf("REVIEWBOT_GITHUB_TOKEN is required"))
	}

	apiKey := os.Getenv("REVIEWBOT_ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, model.NewPipelineError(model.KindConfig, "load config",
			fmt.Errorf("REVIEWBOT_ANTHROPIC_API_KEY is required"))
	}

	modelID := defaultModel
	if v, ok := os.LookupEnv("REVIEWBOT_MODEL"); ok && v != "" {
		modelID = v
	}

	var maxTokens int64 = defaultMaxTokens
	if v, ok := os.LookupEnv("REVIEWBOT_MAX_COMMENT_TOKENS"); ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil || parsed <= 0 {
			return nil, model.NewPipelineError(model.KindConfig, "load config",
				fmt.Errorf("REVIEWBOT_MAX_COMMENT_TOKENS has invalid value %q", v))
		}
		maxTokens = parsed
	}

	var exclude []string
	if v, ok := os.LookupEnv("REVIEWBOT_EXCLUDE"); ok && v != "" {
		for _, pattern := range strings.Split(v, ",") {
			pattern = strings.TrimSpace(pattern)
			if pattern != "" {
				exclude = append(exclude, pattern)
			}
		}
	}
	if exclude == nil {
		exclude = []string{}
	}

	eventPath := os.Getenv("GITHUB_EVENT_PATH")
	if eventPath == "" {
		return nil, model.NewPipelineError(model.KindConfig, "load config",
			fmt.Errorf("GITHUB_EVENT_PATH is required"))
	}

	return &Config{
		GitHubToken:     token,
		AnthropicAPIKey: apiKey,
		Model:           modelID,
		ExcludePatterns: exclude,
		MaxTokens:       maxTokens,
		EventPath:       eventPath,
	}, nil
}
