// Package config assembles runtime settings from defaults, an optional YAML
// file and the environment, in that order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/cutcoach/internal/app"
	"github.com/alexanderramin/cutcoach/internal/domain"
	"github.com/alexanderramin/cutcoach/internal/llm"
)

// Config is the fully resolved runtime configuration.
type Config struct {
	LLM           llm.LLMConfig
	MaxMediaBytes int64
	LogFile       string
	LogLevel      string

	// Path is the file the settings were read from; empty when none existed.
	Path string
}

type fileConfig struct {
	LLM struct {
		Provider  string              `yaml:"provider"`
		APIKey    string              `yaml:"api_key"`
		Endpoint  string              `yaml:"endpoint"`
		Model     string              `yaml:"model"`
		TimeoutMs int                 `yaml:"timeout_ms"`
		LogCalls  *bool               `yaml:"log_calls"`
		Tasks     map[string]taskFile `yaml:"tasks"`
	} `yaml:"llm"`
	Media struct {
		MaxBytes string `yaml:"max_bytes"` // "9MiB" or a plain byte count
	} `yaml:"media"`
	Log struct {
		File  string `yaml:"file"`
		Level string `yaml:"level"`
	} `yaml:"log"`
}

type taskFile struct {
	Temperature *float64 `yaml:"temperature"`
	MaxTokens   *int     `yaml:"max_tokens"`
	TimeoutMs   *int     `yaml:"timeout_ms"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LLM:           llm.DefaultConfig(),
		MaxMediaBytes: app.DefaultMaxMediaBytes,
		LogLevel:      "info",
	}
}

// DefaultPath returns CUTCOACH_CONFIG, or ~/.cutcoach/config.yaml.
func DefaultPath() string {
	if p := os.Getenv("CUTCOACH_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cutcoach", "config.yaml")
}

// Load resolves configuration. An explicit path must exist; when path is
// empty the default location is tried and a missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := cfg.applyFile(data); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
			cfg.Path = path
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyFile(data []byte) error {
	var f fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	if f.LLM.Provider != "" {
		c.LLM.Provider = llm.Provider(strings.ToLower(f.LLM.Provider))
	}
	c.LLM.APIKey = domain.CoalesceStr(f.LLM.APIKey, c.LLM.APIKey)
	c.LLM.Endpoint = domain.CoalesceStr(f.LLM.Endpoint, c.LLM.Endpoint)
	c.LLM.Model = domain.CoalesceStr(f.LLM.Model, c.LLM.Model)
	if f.LLM.TimeoutMs > 0 {
		c.LLM.TimeoutMs = f.LLM.TimeoutMs
	}
	if f.LLM.LogCalls != nil {
		c.LLM.LogCalls = *f.LLM.LogCalls
	}
	for name, tf := range f.LLM.Tasks {
		task := llm.TaskType(name)
		tc, ok := c.LLM.Tasks[task]
		if !ok {
			return fmt.Errorf("unknown llm task %q", name)
		}
		if tf.Temperature != nil {
			tc.Temperature = *tf.Temperature
		}
		if tf.MaxTokens != nil {
			tc.MaxTokens = *tf.MaxTokens
		}
		if tf.TimeoutMs != nil {
			tc.TimeoutMs = *tf.TimeoutMs
		}
		c.LLM.Tasks[task] = tc
	}

	if f.Media.MaxBytes != "" {
		n, err := parseSize(f.Media.MaxBytes)
		if err != nil {
			return fmt.Errorf("media.max_bytes: %w", err)
		}
		c.MaxMediaBytes = n
	}
	c.LogFile = domain.CoalesceStr(f.Log.File, c.LogFile)
	c.LogLevel = domain.CoalesceStr(f.Log.Level, c.LogLevel)
	return nil
}

// applyEnv overlays environment variables. Invalid values are ignored.
func (c *Config) applyEnv() {
	llm.ApplyEnv(&c.LLM)
	if v := os.Getenv("CUTCOACH_MAX_MEDIA_BYTES"); v != "" {
		if n, err := parseSize(v); err == nil {
			c.MaxMediaBytes = n
		}
	}
	c.LogFile = domain.CoalesceStr(os.Getenv("CUTCOACH_LOG_FILE"), c.LogFile)
	c.LogLevel = domain.CoalesceStr(os.Getenv("CUTCOACH_LOG_LEVEL"), c.LogLevel)
}

func parseSize(s string) (int64, error) {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, err
	}
	if n == 0 || n > 1<<40 {
		return 0, fmt.Errorf("size out of range: %s", s)
	}
	return int64(n), nil
}
