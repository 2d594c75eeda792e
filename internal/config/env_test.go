// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"CONFTOKEN_STRICT":    "true",
		"CONFTOKEN_CLIPBOARD": "true",
		"CONFTOKEN_LOG_LEVEL": "debug",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &Config{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.True(t, cfg.App.StrictExit)
	assert.True(t, cfg.App.Clipboard)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFTOKEN_STRICT": "true",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &Config{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.True(t, cfg.App.StrictExit)
	assert.False(t, cfg.App.Clipboard)
	assert.Empty(t, cfg.App.LogLevel)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_NoVariables(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &Config{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestParseEnv_InvalidBool(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFTOKEN_STRICT": "not-a-bool",
	})

	// Act
	cfg := &Config{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"CONFTOKEN_STRICT",
		"CONFTOKEN_CLIPBOARD",
		"CONFTOKEN_LOG_LEVEL",
	}
	for _, k := range keys {
		require.NoError(t, os.Unsetenv(k))
	}
}
