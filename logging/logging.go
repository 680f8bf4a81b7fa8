/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package logging builds zerolog loggers from configuration.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/suparena/attrindex/config"
)

// New returns a logger writing to out as configured by cfg. An unrecognised
// level falls back to info.
func New(out io.Writer, cfg config.Log) zerolog.Logger {
	if cfg.Format != config.LogFormatJSON {
		out = zerolog.ConsoleWriter{
			Out:          out,
			TimeFormat:   time.RFC3339,
			PartsExclude: partsExclude(cfg.Timestamp),
		}
	}

	level, _ := ParseLevel(cfg.Level)
	ctx := zerolog.New(out).Level(level).With().Str("app", "attrindex")
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}

// ParseLevel maps a level name to a zerolog level. It reports false for unknown names.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func partsExclude(timestamp bool) []string {
	if timestamp {
		return nil
	}
	return []string{zerolog.TimestampFieldName}
}
