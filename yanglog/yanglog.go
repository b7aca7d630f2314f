// Package yanglog provides structured logging handler construction for use
// with [log/slog], modeled on the CLI-flag-integrated logging config shown
// across the retrieval pack's tooling repos. It supports JSON and logfmt
// output and the four standard severities.
package yanglog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Format is the log output encoding.
type Format string

const (
	FormatJSON   Format = "json"
	FormatLogfmt Format = "logfmt"
)

var (
	ErrUnknownLogLevel  = errors.New("yanglog: unknown log level")
	ErrUnknownLogFormat = errors.New("yanglog: unknown log format")
)

// GetLevel parses a log level string into a [slog.Level].
func GetLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLogLevel, level)
}

// GetFormat parses a log format string into a [Format].
func GetFormat(format string) (Format, error) {
	switch Format(strings.ToLower(format)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatLogfmt:
		return FormatLogfmt, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLogFormat, format)
}

// NewHandler builds a [slog.Handler] writing to w at the given level and
// format.
func NewHandler(w io.Writer, level slog.Level, format Format) slog.Handler {
	opts := &slog.HandlerOptions{AddSource: true, Level: level}
	if format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// NewHandlerFromStrings parses level/format strings and builds a handler,
// for callers (e.g. [Config]) that only have CLI flag values in hand.
func NewHandlerFromStrings(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := GetLevel(level)
	if err != nil {
		return nil, err
	}
	fmtt, err := GetFormat(format)
	if err != nil {
		return nil, err
	}
	return NewHandler(w, lvl, fmtt), nil
}

// Config holds the CLI-flag-driven logging configuration: which level and
// format to use, and the flag names they were registered under.
type Config struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`

	flagLevel  string
	flagFormat string
}

// NewConfig returns a Config with the conventional flag names and an
// "info"/"logfmt" default, ready for RegisterFlags.
func NewConfig() *Config {
	return &Config{
		Level:      "info",
		Format:     "logfmt",
		flagLevel:  "log-level",
		flagFormat: "log-format",
	}
}

// RegisterFlags adds --log-level/--log-format flags to flags, defaulting
// to whatever Level/Format already hold.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.flagLevel, c.Level,
		"log level, one of: error, warn, info, debug")
	flags.StringVar(&c.Format, c.flagFormat, c.Format,
		"log format, one of: json, logfmt")
}

// RegisterCompletions registers shell completion for the logging flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	if err := cmd.RegisterFlagCompletionFunc(c.flagLevel,
		cobra.FixedCompletions([]string{"error", "warn", "info", "debug"}, cobra.ShellCompDirectiveNoFileComp)); err != nil {
		return fmt.Errorf("registering log-level completion: %w", err)
	}
	if err := cmd.RegisterFlagCompletionFunc(c.flagFormat,
		cobra.FixedCompletions([]string{"json", "logfmt"}, cobra.ShellCompDirectiveNoFileComp)); err != nil {
		return fmt.Errorf("registering log-format completion: %w", err)
	}
	return nil
}

// NewHandler builds the [slog.Handler] described by c, writing to w.
func (c *Config) NewHandler(w io.Writer) (slog.Handler, error) {
	return NewHandlerFromStrings(w, c.Level, c.Format)
}
