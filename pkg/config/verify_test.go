package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	cfg := &Config{}
	cfg.Server.Listen = ":8080"
	cfg.Server.Timeout = 30 * time.Second
	cfg.GenAI.APIKey = "test-key"
	cfg.GenAI.Model = "gemini-2.5-flash-image-preview"
	return cfg
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	err := VerifyAgainstEmbeddedSchema(validTestConfig())
	assert.NoError(t, err)
}

func TestVerifyAgainstEmbeddedSchema_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"no listen", func(c *Config) { c.Server.Listen = "" }, "server.listen is required"},
		{"no timeout", func(c *Config) { c.Server.Timeout = 0 }, "server.timeout is required"},
		{"no api key", func(c *Config) { c.GenAI.APIKey = "" }, "genai.api_key is required"},
		{"no model", func(c *Config) { c.GenAI.Model = "" }, "genai.model is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)
			err := VerifyAgainstEmbeddedSchema(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	data, err := schema.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), "genai")
	assert.Contains(t, string(data), "learning")
}
