package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYaml(t *testing.T) {
	data := []byte(`
base_url: http://trading.internal:3030
prompt_timeout: 90s
transcript_dir: /var/lib/tradeconsole/wal
`)

	fileCfg, err := ParseYaml(data)
	require.NoError(t, err)

	assert.Equal(t, "http://trading.internal:3030", fileCfg.BaseURL)
	assert.Equal(t, "90s", fileCfg.PromptTimeoutStr)
	assert.Equal(t, "/var/lib/tradeconsole/wal", fileCfg.TranscriptDir)
	assert.Empty(t, fileCfg.HealthTimeoutStr)
}

func TestParseYamlInvalid(t *testing.T) {
	_, err := ParseYaml([]byte("base_url: [broken"))
	assert.Error(t, err)
}

func TestApplyOverlaysNonEmptyValues(t *testing.T) {
	cfg := Config{
		BaseURL:         "http://localhost:3030",
		HealthTimeout:   5 * time.Second,
		PromptTimeout:   120 * time.Second,
		LeverageTimeout: 30 * time.Second,
		TranscriptDir:   "./wal/transcript",
	}

	err := cfg.apply(FileConfig{
		BaseURL:          "http://trading.internal:3030",
		PromptTimeoutStr: "90s",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://trading.internal:3030", cfg.BaseURL)
	assert.Equal(t, 90*time.Second, cfg.PromptTimeout)
	// untouched fields keep their flag defaults
	assert.Equal(t, 5*time.Second, cfg.HealthTimeout)
	assert.Equal(t, 30*time.Second, cfg.LeverageTimeout)
	assert.Equal(t, "./wal/transcript", cfg.TranscriptDir)
}

func TestApplyRejectsMalformedDuration(t *testing.T) {
	cfg := Config{BaseURL: "http://localhost:3030"}

	err := cfg.apply(FileConfig{HealthTimeoutStr: "soon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "health_timeout")
}
