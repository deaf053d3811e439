// Package config loads console configuration from flags, an optional YAML
// file and the environment.
package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultBaseURL         = "http://localhost:3030"
	defaultHealthTimeout   = 5 * time.Second
	defaultPromptTimeout   = 120 * time.Second
	defaultLeverageTimeout = 30 * time.Second
	defaultTranscriptDir   = "./wal/transcript"

	// TokenEnv is the environment variable holding the API bearer token.
	// The token can also be set interactively with the token command.
	TokenEnv = "TRADING_API_TOKEN"
)

// Config holds everything the console needs to run.
type Config struct {
	BaseURL         string
	Token           string
	HealthTimeout   time.Duration
	PromptTimeout   time.Duration
	LeverageTimeout time.Duration
	TranscriptDir   string
	Setup           bool
}

// FileConfig is the YAML representation, also written by the setup wizard.
// Durations are kept as strings because yaml does not decode them natively.
type FileConfig struct {
	BaseURL            string `yaml:"base_url"`
	HealthTimeoutStr   string `yaml:"health_timeout,omitempty"`
	PromptTimeoutStr   string `yaml:"prompt_timeout,omitempty"`
	LeverageTimeoutStr string `yaml:"leverage_timeout,omitempty"`
	TranscriptDir      string `yaml:"transcript_dir,omitempty"`
}

// Get parses command-line flags, merges the optional YAML config over the
// flag defaults and picks the token up from the environment (a .env file is
// honored when present).
func Get() (Config, error) {
	configPath := flag.String("config", "", "path to yaml config")
	baseURL := flag.String("url", defaultBaseURL, "trading API base URL")
	healthTimeout := flag.Duration("healthtimeout", defaultHealthTimeout, "health probe timeout")
	promptTimeout := flag.Duration("prompttimeout", defaultPromptTimeout, "prompt call timeout")
	leverageTimeout := flag.Duration("leveragetimeout", defaultLeverageTimeout, "leverage call timeout")
	transcriptDir := flag.String("transcriptdir", defaultTranscriptDir, "directory for the session transcript WAL, empty disables recording")
	setup := flag.Bool("setup", false, "run the interactive configuration wizard")
	flag.Parse()

	_ = godotenv.Load()

	cfg := Config{
		BaseURL:         *baseURL,
		Token:           os.Getenv(TokenEnv),
		HealthTimeout:   *healthTimeout,
		PromptTimeout:   *promptTimeout,
		LeverageTimeout: *leverageTimeout,
		TranscriptDir:   *transcriptDir,
		Setup:           *setup,
	}

	if *configPath != "" {
		fileCfg, err := readYamlFile(*configPath)
		if err != nil {
			return Config{}, err
		}
		if err := cfg.apply(fileCfg); err != nil {
			return Config{}, err
		}
	}

	if cfg.BaseURL == "" {
		return Config{}, fmt.Errorf("trading API base URL is required")
	}

	return cfg, nil
}

func readYamlFile(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, err
	}
	return ParseYaml(data)
}

// ParseYaml decodes a FileConfig from raw YAML.
func ParseYaml(data []byte) (FileConfig, error) {
	var fileCfg FileConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return FileConfig{}, fmt.Errorf("incorrect yaml config: %w", err)
	}
	return fileCfg, nil
}

// apply overlays non-empty file values on top of the current config.
func (c *Config) apply(f FileConfig) error {
	if f.BaseURL != "" {
		c.BaseURL = f.BaseURL
	}
	if f.TranscriptDir != "" {
		c.TranscriptDir = f.TranscriptDir
	}

	for _, timeout := range []struct {
		name  string
		value string
		dst   *time.Duration
	}{
		{"health_timeout", f.HealthTimeoutStr, &c.HealthTimeout},
		{"prompt_timeout", f.PromptTimeoutStr, &c.PromptTimeout},
		{"leverage_timeout", f.LeverageTimeoutStr, &c.LeverageTimeout},
	} {
		if timeout.value == "" {
			continue
		}
		d, err := time.ParseDuration(timeout.value)
		if err != nil {
			return fmt.Errorf("incorrect '%s' param in yaml config (must be a duration like 30s): %w", timeout.name, err)
		}
		*timeout.dst = d
	}

	return nil
}
