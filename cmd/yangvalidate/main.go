// Package main provides the CLI entry point for yangvalidate, a tool that
// parses YANG modules and reports parse/resolver diagnostics.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gkantsidis/yangparse"
	"github.com/gkantsidis/yangparse/config"
	"github.com/gkantsidis/yangparse/yanglog"
)

func main() {
	logCfg := yanglog.NewConfig()
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "yangvalidate",
		Short: "Parse and validate YANG modules",
		Long: `yangvalidate strips comments from, parses, and resolves typedef/grouping
references in YANG modules (RFC 7950). It does not evaluate XPath
expressions, check type restrictions, apply augments/deviations, or
resolve cross-module import/include.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a yangvalidate config file")

	if err := logCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	validateCmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Parse a YANG module or submodule and report diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			cfg.Log.Level = logCfg.Level
			cfg.Log.Format = logCfg.Format

			handler, err := cfg.Log.NewHandler(os.Stderr)
			if err != nil {
				return err
			}
			logger := slog.New(handler)

			return runValidate(logger, cfg, args[0])
		},
	}
	rootCmd.AddCommand(validateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func runValidate(logger *slog.Logger, cfg *config.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	module, submodule, errs := yangparse.Parse(string(data))
	for _, e := range errs {
		logger.Error("parse error", "file", path, "err", e)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s: %d parse error(s)", path, len(errs))
	}

	var resolveErrs []error
	switch {
	case module != nil:
		fmt.Printf("Detected module: %s\n", module.Name.String())
		_, resolveErrs = yangparse.Resolve(module.Body)
	case submodule != nil:
		fmt.Printf("Detected submodule: %s\n", submodule.Name.String())
		_, resolveErrs = yangparse.Resolve(submodule.Body)
	}

	for _, e := range resolveErrs {
		logger.Warn("unresolved reference", "file", path, "err", e)
	}
	if cfg.Strict && len(resolveErrs) > 0 {
		return fmt.Errorf("%s: %d unresolved reference(s) in strict mode", path, len(resolveErrs))
	}

	return nil
}
