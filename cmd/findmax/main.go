package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"findmax/internal/config"
	"findmax/internal/logging"
)

const version = "1.0.0"

var (
	// Global flags
	verbose    bool
	inputFlag  string
	configPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "findmax",
	Short: "findmax - report the maximum value of an integer array and its indices",
	Long: `findmax accepts a comma-separated list of up to 16 signed integers,
computes the maximum value, and reports every index at which it occurs.

The input can come from --input, a positional argument, the FINDMAX_INPUT
environment variable, or the config file, in that order of precedence.

Example:
  findmax run --input "3,1,3,2"`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip logger init for version (no diagnostics to emit)
		if cmd.Use == "version" {
			return nil
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Initialize logger
		lc := cfg.Logging
		if verbose {
			lc.Level = "debug"
		}
		logger, err = logging.New(lc)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Info("Find Max: exiting")
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the scan
		return runScan(cmd, args)
	},
}

// runCmd runs a single scan over the input parameter
var runCmd = &cobra.Command{
	Use:   "run [input]",
	Short: "Scan the input array and report the maximum and its indices",
	Long: `Parses the input parameter, validates the element count (1-16),
finds the maximum value, and logs the received array, the maximum, and the
ordered list of indices where it occurs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

// versionCmd prints the version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the findmax version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("findmax %s\n", version)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&inputFlag, "input", "i", "", "Comma-separated integer list, max 16 elements (or set FINDMAX_INPUT env)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "findmax.yaml", "Config file path")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// loadConfig loads and validates the config file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
