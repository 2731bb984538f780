package llm

import (
	"os"
	"strconv"
	"strings"
)

// TaskType identifies the kind of model call being performed.
type TaskType string

const (
	TaskAnalyze      TaskType = "analyze"
	TaskReviewVideo  TaskType = "review_video"
	TaskReviewScript TaskType = "review_script"
)

// Provider selects the model backend.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
)

const (
	defaultGeminiModel    = "gemini-3-pro-preview"
	defaultOllamaModel    = "llama3.2"
	defaultOllamaEndpoint = "http://localhost:11434"
)

// TaskConfig holds per-task model parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Tasks lists every task type in a stable order.
func Tasks() []TaskType {
	return []TaskType{TaskAnalyze, TaskReviewVideo, TaskReviewScript}
}

// LLMConfig holds all configuration for the model subsystem.
type LLMConfig struct {
	Provider  Provider
	APIKey    string
	Endpoint  string // empty uses the provider default
	Model     string // empty uses the provider default
	TimeoutMs int
	LogCalls  bool
	Tasks     map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig targeting Gemini with sensible defaults.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Provider:  ProviderGemini,
		TimeoutMs: 120000,
		Tasks: map[TaskType]TaskConfig{
			TaskAnalyze:      {Temperature: 0.4, MaxTokens: 8192, TimeoutMs: 180000},
			TaskReviewVideo:  {Temperature: 0.3, MaxTokens: 4096, TimeoutMs: 120000},
			TaskReviewScript: {Temperature: 0.3, MaxTokens: 4096, TimeoutMs: 90000},
		},
	}
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()
	ApplyEnv(&cfg)
	return cfg
}

// ApplyEnv overlays environment variables onto cfg. Invalid values are ignored.
func ApplyEnv(cfg *LLMConfig) {
	if v := os.Getenv("CUTCOACH_LLM_PROVIDER"); v != "" {
		cfg.Provider = Provider(strings.ToLower(v))
	}
	for _, name := range []string{"GOOGLE_API_KEY", "GEMINI_API_KEY", "CUTCOACH_API_KEY"} {
		if v := os.Getenv(name); v != "" {
			cfg.APIKey = v
		}
	}
	if v := os.Getenv("CUTCOACH_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("CUTCOACH_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("CUTCOACH_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("CUTCOACH_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	applyTaskTimeoutEnv(cfg, TaskAnalyze, "CUTCOACH_LLM_ANALYZE_TIMEOUT_MS")
	applyTaskTimeoutEnv(cfg, TaskReviewVideo, "CUTCOACH_LLM_REVIEW_VIDEO_TIMEOUT_MS")
	applyTaskTimeoutEnv(cfg, TaskReviewScript, "CUTCOACH_LLM_REVIEW_SCRIPT_TIMEOUT_MS")
}

// EffectiveModel returns the configured model or the provider default.
func (c LLMConfig) EffectiveModel() string {
	if c.Model != "" {
		return c.Model
	}
	if c.Provider == ProviderOllama {
		return defaultOllamaModel
	}
	return defaultGeminiModel
}

// EffectiveEndpoint returns the configured endpoint or the provider default.
// Gemini's default is left to the SDK and reported as empty.
func (c LLMConfig) EffectiveEndpoint() string {
	if c.Endpoint != "" {
		return strings.TrimRight(c.Endpoint, "/")
	}
	if c.Provider == ProviderOllama {
		return defaultOllamaEndpoint
	}
	return ""
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	if cfg.Tasks == nil {
		cfg.Tasks = map[TaskType]TaskConfig{}
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
