package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseJSON_FullFile verifies that all supported fields are read from a
// JSON config file.
func TestParseJSON_FullFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"strict_exit": true,
			"clipboard":   true,
			"log_level":   "debug",
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.True(t, cfg.App.StrictExit)
	assert.True(t, cfg.App.Clipboard)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Empty(t, cfg.JSONFilePath, "a file config must not chain to another file")
}

// TestParseJSON_EmptyFileObject verifies that an empty JSON object produces
// a zero config.
func TestParseJSON_EmptyFileObject(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{})

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

// TestParseJSON_MissingFile verifies the error path for a nonexistent path.
func TestParseJSON_MissingFile(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Nil(t, cfg)
	require.Error(t, err)
}

// TestParseJSON_MalformedFile verifies the error path for invalid JSON.
func TestParseJSON_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	cfg, err := parseJSON(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
}
