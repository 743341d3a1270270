package main

import (
	"fmt"
	"os"

	"chandas/internal/config"
	"chandas/internal/meter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string
	metersFile string

	// Logger
	logger *zap.Logger

	// Loaded configuration, available to all subcommands after PersistentPreRunE.
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "chandas",
	Short: "chandas - Sanskrit prosody scanner and meter classifier",
	Long: `chandas scans Devanagari verse into Laghu/Guru (light/heavy) syllable
weights and matches the pattern against a catalogue of classical meters.

Verses are read from files or stdin; each non-empty line is treated as one
pada. The output is the weight pattern ("L G G L ..." per line, lines joined
with " | ") followed by the identified meter name or a diagnostic.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		cfg.Verbose = cfg.Verbose || verbose
		if cmd.Flags().Changed("meters") {
			cfg.MetersFile = metersFile
		}

		zapCfg := zap.NewProductionConfig()
		if cfg.Verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: analyze stdin.
		return runAnalyze(cmd, args)
	},
}

// buildRegistry returns the builtin catalogue, extended with the configured
// user meter file when one is set.
func buildRegistry() (*meter.Registry, error) {
	reg := meter.Builtin()
	if cfg.MetersFile == "" {
		return reg, nil
	}
	templates, err := meter.LoadTemplates(cfg.MetersFile)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded user meter templates",
		zap.String("file", cfg.MetersFile),
		zap.Int("count", len(templates)))
	return reg.Extend(templates...), nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "config file path")
	rootCmd.PersistentFlags().StringVar(&metersFile, "meters", "", "YAML file with additional meter templates")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(metersCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
