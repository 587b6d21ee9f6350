// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the line-comment CLI, which rewrites
// /* block */ comments in a source file as // line comments.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/line-comment/internal/convert"
	"github.com/pdiddy/line-comment/internal/history"
	"github.com/pdiddy/line-comment/internal/logging"
	"github.com/pdiddy/line-comment/internal/report"
	"github.com/pdiddy/line-comment/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// cfg is the merged configuration, loaded before every command runs.
	cfg types.Config

	// logger writes diagnostics to stderr; converted text never goes through it.
	logger = slog.New(slog.DiscardHandler)
)

// rootCmd converts a single file and is the parent of every subcommand.
var rootCmd = &cobra.Command{
	Use:   "line-comment <input> <output>",
	Short: "Rewrite /* block */ comments as // line comments",
	Long: `line-comment reads a UTF-8 source file, replaces every /* ... */ block
comment with an equivalent run of // line comments, and writes the result to
the output path. Leading "*" continuation markers are stripped from interior
lines and lines left empty by stripping are dropped. Everything outside block
comments is copied unchanged. A /* with no closing */ is left as it is.

The output is written atomically: on any error the output path is untouched.

An input named like a subcommand (batch, history, regions, version) must be
given with a path prefix, for example ./version.`,
	Args: cobra.ExactArgs(2),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg = types.DefaultConfig()
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		logger = logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug("using config file", "path", used)
		}
		return nil
	},
	RunE: runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := types.DefaultConfig()
	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("log.format", defaults.Log.Format)
	viper.SetDefault("history.path", defaults.History.Path)
	viper.SetDefault("batch.out_dir", defaults.Batch.OutDir)
	viper.SetDefault("batch.force", defaults.Batch.Force)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./line-comment.yaml or ~/.config/line-comment/line-comment.yaml)")
	pf.String("log-level", defaults.Log.Level, "log level: debug, info, warn, or error")
	pf.String("log-format", defaults.Log.Format, "log format: text or json")
	pf.String("history", "", "SQLite database recording each run (empty disables history)")
	bindFlag("log.level", pf.Lookup("log-level"))
	bindFlag("log.format", pf.Lookup("log-format"))
	bindFlag("history.path", pf.Lookup("history"))

	rootCmd.Flags().String("report", "", "write a YAML report of converted regions to this path")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("line-comment")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "line-comment"))
		}
	}

	viper.SetEnvPrefix("LINE_COMMENT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	warnConfigError(rootCmd.ErrOrStderr(), viper.ReadInConfig())
}

// warnConfigError reports a config file that exists but cannot be read.
// Not finding any config file is normal and stays silent.
func warnConfigError(w io.Writer, err error) {
	if err == nil {
		return
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return
	}
	fmt.Fprintf(w, "warning: reading config: %v\n", err)
}

func runConvert(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]

	res, err := convert.ConvertFile(in, out)
	recordRuns(cmd.Context(), types.RunFromResult(res, err))
	if err != nil {
		return err
	}
	logger.Info("converted",
		"input", in,
		"output", out,
		"regions", res.Stats.Regions,
		"lines_emitted", res.Stats.LinesEmitted,
		"lines_dropped", res.Stats.LinesDropped)

	reportPath, _ := cmd.Flags().GetString("report")
	if reportPath == "" {
		return nil
	}
	if err := report.WriteFile(reportPath, report.Build(in, res.Regions, res.Stats)); err != nil {
		return err
	}
	logger.Debug("wrote report", "path", reportPath)
	return nil
}

// recordRuns appends runs to the history database when one is configured.
// History failures are logged and never fail the conversion.
func recordRuns(ctx context.Context, runs ...types.Run) {
	if cfg.History.Path == "" || len(runs) == 0 {
		return
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		logger.Warn("history unavailable", "path", cfg.History.Path, "error", err)
		return
	}
	defer store.Close()

	for _, run := range runs {
		if _, err := store.Record(ctx, run); err != nil {
			logger.Warn("recording run", "input", run.Input, "error", err)
		}
	}
}

func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag for %s: %v", key, err))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
