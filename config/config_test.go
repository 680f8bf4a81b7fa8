/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aerrors "github.com/suparena/attrindex/errors"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFromEnv(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		EnvSchemaFile:   " attributes.yaml ",
		EnvLogLevel:     "DEBUG",
		EnvLogFormat:    "json",
		EnvLogTimestamp: "false",
	}))
	require.NoError(t, err)

	assert.Equal(t, "attributes.yaml", cfg.SchemaFile)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, LogFormatJSON, cfg.Log.Format)
	assert.False(t, cfg.Log.Timestamp)
}

func TestFromEnvRejects(t *testing.T) {
	tests := map[string]map[string]string{
		"format":    {EnvLogFormat: "xml"},
		"timestamp": {EnvLogTimestamp: "sometimes"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(envMap(env))
			assert.True(t, aerrors.IsValidationError(err), "expected validation error, got %v", err)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ATTRINDEX_SCHEMA_FILE=from-file.toml\nATTRINDEX_LOG_FORMAT=json\n"), 0o600))

	t.Setenv(EnvSchemaFile, "")
	os.Unsetenv(EnvSchemaFile)
	t.Setenv(EnvLogFormat, "console")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file.toml", cfg.SchemaFile)
	assert.Equal(t, LogFormatConsole, cfg.Log.Format, "environment wins over the .env file")
}

func TestLoadMissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
