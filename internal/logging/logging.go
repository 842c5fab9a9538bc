// SPDX-License-Identifier: MIT

// Package logging configures the process-wide slog logger for the CLI.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Init creates and sets the package-level default slog logger writing to w.
// When asJSON is true, uses JSONHandler; otherwise TextHandler for human
// readability. Results go to stdout, so w is normally stderr.
func Init(w io.Writer, asJSON bool, level slog.Level) {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if asJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// ParseLevel maps a --log-level value to a slog.Level. It accepts the slog
// names in any case, with an optional offset ("debug", "WARN", "info+2"),
// and "warning" as an alias of "warn". Anything else is LevelInfo.
func ParseLevel(s string) slog.Level {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "warning") {
		return slog.LevelWarn
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}

	return lvl
}
