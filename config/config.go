/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config reads runtime settings from the environment and optional .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	aerrors "github.com/suparena/attrindex/errors"
)

const (
	EnvSchemaFile   = "ATTRINDEX_SCHEMA_FILE"
	EnvLogLevel     = "ATTRINDEX_LOG_LEVEL"
	EnvLogFormat    = "ATTRINDEX_LOG_FORMAT"
	EnvLogTimestamp = "ATTRINDEX_LOG_TIMESTAMP"
)

// Log formats
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config holds runtime settings
type Config struct {
	// SchemaFile is the YAML or TOML schema bound at startup. Empty means none.
	SchemaFile string
	Log        Log
}

// Log configures the logger
type Log struct {
	Level     string
	Format    string
	Timestamp bool
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		Log: Log{
			Level:     "info",
			Format:    LogFormatConsole,
			Timestamp: true,
		},
	}
}

// Load reads envFiles into the process environment, then builds a Config from it.
// Variables already set in the environment win over .env files. With no envFiles,
// ".env" is read if it exists.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load .env: %w", err)
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, fmt.Errorf("failed to load env files: %w", err)
	}

	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(getenv(EnvSchemaFile)); v != "" {
		cfg.SchemaFile = v
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv(EnvLogFormat)); v != "" {
		switch strings.ToLower(v) {
		case LogFormatConsole, LogFormatJSON:
			cfg.Log.Format = strings.ToLower(v)
		default:
			return Config{}, aerrors.NewValidationError(EnvLogFormat, fmt.Sprintf("unsupported log format %q", v))
		}
	}
	if v := strings.TrimSpace(getenv(EnvLogTimestamp)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, aerrors.NewValidationError(EnvLogTimestamp, fmt.Sprintf("not a boolean: %q", v))
		}
		cfg.Log.Timestamp = b
	}

	return cfg, nil
}
