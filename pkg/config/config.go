package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=120s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"description=SQLite connection string; empty disables render history"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	GenAI GenAIConfig `yaml:"genai" json:"genai" jsonschema:"description=Generative model configuration"`

	Learning LearningConfig `yaml:"learning" json:"learning" jsonschema:"description=Learning context configuration"`
}

// GenAIConfig holds the generative model settings
type GenAIConfig struct {
	APIKey        string        `yaml:"api_key" json:"api_key" jsonschema:"required,description=Gemini API key (can use environment variable)"`
	Model         string        `yaml:"model" json:"model" jsonschema:"default=gemini-2.5-flash-image-preview,description=Image generation model name"`
	AnalysisModel string        `yaml:"analysis_model" json:"analysis_model" jsonschema:"default=gemini-2.5-flash,description=Model used for scene analysis"`
	Temperature   float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.4,description=Temperature for response generation"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=120s,description=Per-request timeout"`
	Retry         RetryConfig   `yaml:"retry" json:"retry" jsonschema:"description=Retry policy for transient model failures"`
}

// RetryConfig holds the bounded backoff settings for remote calls
type RetryConfig struct {
	MaxAttempts  int           `yaml:"max_attempts" json:"max_attempts" jsonschema:"default=3,minimum=1,description=Maximum number of attempts per call"`
	InitialDelay time.Duration `yaml:"initial_delay" json:"initial_delay" jsonschema:"default=2s,description=Delay before the first retry"`
	Multiplier   float64       `yaml:"multiplier" json:"multiplier" jsonschema:"default=2,description=Backoff delay multiplier"`
}

// LearningConfig holds the learning-context retrieval settings
type LearningConfig struct {
	Examples       int `yaml:"examples" json:"examples" jsonschema:"default=3,description=Number of top-rated prompts to include as examples"`
	ScanLimit      int `yaml:"scan_limit" json:"scan_limit" jsonschema:"default=10,description=Number of low-rated records scanned for constraint tags"`
	MaxConstraints int `yaml:"max_constraints" json:"max_constraints" jsonschema:"default=5,description=Maximum number of distinct constraint tags"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	// generous server timeout, a retried generation call can take a while
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 120 * time.Second
	}

	// database defaults; an empty DSN is deliberate and means "no history"
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.GenAI.Model == "" {
		c.GenAI.Model = "gemini-2.5-flash-image-preview"
	}
	if c.GenAI.AnalysisModel == "" {
		c.GenAI.AnalysisModel = "gemini-2.5-flash"
	}
	if c.GenAI.Temperature == 0 {
		c.GenAI.Temperature = 0.4
	}
	if c.GenAI.Timeout == 0 {
		c.GenAI.Timeout = 120 * time.Second
	}
	if c.GenAI.Retry.MaxAttempts == 0 {
		c.GenAI.Retry.MaxAttempts = 3
	}
	if c.GenAI.Retry.InitialDelay == 0 {
		c.GenAI.Retry.InitialDelay = 2 * time.Second
	}
	if c.GenAI.Retry.Multiplier == 0 {
		c.GenAI.Retry.Multiplier = 2
	}

	if c.Learning.Examples == 0 {
		c.Learning.Examples = 3
	}
	if c.Learning.ScanLimit == 0 {
		c.Learning.ScanLimit = 10
	}
	if c.Learning.MaxConstraints == 0 {
		c.Learning.MaxConstraints = 5
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate genai config
	if cfg.GenAI.APIKey == "" {
		return fmt.Errorf("genai.api_key is required")
	}
	if cfg.GenAI.Model == "" {
		return fmt.Errorf("genai.model is required")
	}
	if cfg.GenAI.Temperature < 0 || cfg.GenAI.Temperature > 2 {
		return fmt.Errorf("genai.temperature must be between 0 and 2")
	}
	if cfg.GenAI.Retry.MaxAttempts < 1 {
		return fmt.Errorf("genai.retry.max_attempts must be at least 1")
	}
	if cfg.GenAI.Retry.InitialDelay <= 0 {
		return fmt.Errorf("genai.retry.initial_delay must be positive")
	}
	if cfg.GenAI.Retry.Multiplier < 1 {
		return fmt.Errorf("genai.retry.multiplier must be at least 1")
	}

	// validate learning config
	if cfg.Learning.Examples < 0 {
		return fmt.Errorf("learning.examples must be non-negative")
	}
	if cfg.Learning.MaxConstraints < 0 {
		return fmt.Errorf("learning.max_constraints must be non-negative")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetGenAIConfig returns the generative model configuration
func (c *Config) GetGenAIConfig() GenAIConfig {
	return c.GenAI
}

// GetLearningConfig returns the learning context configuration
func (c *Config) GetLearningConfig() LearningConfig {
	return c.Learning
}
