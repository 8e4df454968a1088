// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the get-papers-list CLI. It resolves a
// PubMed query, fetches record summaries, keeps papers with at least one
// commercially affiliated author, and writes them to a file or the console.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/get-papers-list/internal/secrets"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	debug  bool
	logger *zap.Logger

	// loadedSecrets holds NCBI credentials loaded from .secrets/ at startup.
	loadedSecrets map[string]string
)

// rootCmd runs the pipeline for a single query.
var rootCmd = &cobra.Command{
	Use:   "get-papers-list <query>",
	Short: "Fetch PubMed papers with pharmaceutical or biotech affiliated authors",
	Long: `get-papers-list searches PubMed with the given query (full PubMed search
syntax), fetches the summary of each of the first 100 matches, and keeps the
papers where at least one author entry mentions a commercial organization
(pharma, biotech, company, inc, corporation).

Results go to the console, one JSON object per line, unless --file is given.
The file format follows the extension: .csv (default), .xlsx, .yaml, .json,
or .db/.sqlite.`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if debug {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		s, err := secrets.Load(".secrets/", logger)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			logger.Debug("loaded secrets", zap.Int("count", len(s)))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		secrets.Apply(&cfg.PubMed, loadedSecrets)
		return execute(cmd.Context(), newPipeline(cfg, logger), args[0], cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./get-papers-list.yaml or ~/.config/get-papers-list/get-papers-list.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "print debug information during execution")

	flags := rootCmd.Flags()
	flags.StringP("file", "f", "", "output file (.csv, .xlsx, .yaml, .json, .db); prints to console when omitted")
	flags.String("format", "", "output format: csv, xlsx, yaml, json, sqlite, lines, table")
	flags.Bool("keep-going", false, "skip papers whose summary cannot be fetched instead of aborting")
	flags.Bool("independent-email-check", false, "also flag company-affiliated authors with an email address as non-academic")
	flags.StringSlice("keywords", nil, "commercial keywords (default: pharma,biotech,company,inc,corporation)")
	flags.Duration("timeout", 30*time.Second, "HTTP request timeout")
	flags.String("api-key", "", "NCBI API key")
	flags.String("email", "", "contact email sent to NCBI")

	bindings := map[string]string{
		"output.file":                        "file",
		"output.format":                      "format",
		"pubmed.continue_on_error":           "keep-going",
		"classifier.independent_email_check": "independent-email-check",
		"classifier.keywords":                "keywords",
		"pubmed.timeout":                     "timeout",
		"pubmed.api_key":                     "api-key",
		"pubmed.email":                       "email",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	viper.SetDefault("pubmed.database", "pubmed")
	viper.SetDefault("pubmed.tool", "get-papers-list")
	viper.SetDefault("pubmed.user_agent", "get-papers-list/"+version)

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("get-papers-list")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "get-papers-list"))
		}
	}

	viper.SetEnvPrefix("GET_PAPERS_LIST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes the merged flag, environment, and file settings.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error occurred: %v\n", err)
		stop()
		os.Exit(1)
	}
}
