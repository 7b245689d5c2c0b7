package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/example/wordfreq/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	envFile   string
	activeCfg config.Config
	loaded    bool
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "wordfreq",
		Short:         "Count word frequencies in a line of text",
		Long:          "Reads one line of text, strips punctuation, lowercases it and prints how often each word occurs, in order of first appearance.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				EnvFile:    envFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			activeCfg = cfg
			loaded = true
			setupLogger(cfg.LogLevel)
			slog.Debug("configuration loaded", "limits", cfg.Limits, "format", cfg.Output.Format)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	cmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Optional dotenv file (default: $WORDFREQ_ENV_FILE or ./.env if present)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newCountCmd())
	cmd.AddCommand(newLimitsCmd())

	// Running the bare root command behaves like "count".
	var opts countOptions
	opts.register(cmd)

	return cmd
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(levelStr string) {
	lvl, err := config.ParseLogLevel(levelStr)
	if err != nil {
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

func requireConfig() (config.Config, error) {
	if !loaded {
		return config.Config{}, fmt.Errorf("configuration not loaded")
	}
	return activeCfg, nil
}
