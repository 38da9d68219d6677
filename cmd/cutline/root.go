package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile string
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cutline",
	Short: "Parse swim time-standard tables from extracted text",
	Long: `Cutline converts the noisy text lines extracted from a time-standards
table document into structured records: one record per (age, gender, event)
combination, with the time standards keyed by cut-order label.

Lines and rows that do not fit the table schema are never guessed at; they
are reported as flagged rows for operator review.`,
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		config := zap.NewProductionConfig()
		if viper.GetBool("verbose") {
			config = zap.NewDevelopmentConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	}

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./cutline.yaml or ~/.cutline/cutline.yaml)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "verbose (debug) logging",
	)

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig wires viper to the config file, environment, and flags.
// Flags override env, env overrides file.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("cutline")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.cutline")
	}

	viper.SetEnvPrefix("CUTLINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
		// No config file is fine; flags and env suffice.
	}

	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		return err
	}
	return nil
}
