/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for the Akaylee Learner. Provides
comprehensive command-line options, configuration management, and beautiful
user interface for controlling active automata learning runs with advanced
logging capabilities.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/akaylee-learner/cmd/learner/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	jsonLogs   bool

	// Target configuration
	targetPath string

	// Learning configuration
	maxRounds int
	maxDepth  int

	// Output configuration
	printTable bool
	reportPath string

	// Logging configuration
	logDir      string
	logFormat   string
	logMaxFiles int
	logMaxSize  int64
	logCompress bool
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "akaylee-learner",
		Short: "Akaylee Learner - Active automata learning engine",
		Long: `Akaylee Learner is an active automata learning engine implementing Angluin's
L* algorithm. Given a target regular language it infers a deterministic finite
automaton by asking membership queries and refining hypotheses from
counterexamples, with full visibility into the observation table driving the
inference.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")

	// Add logging-specific flags
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")
	rootCmd.PersistentFlags().Int64Var(&logMaxSize, "log-max-size", 100*1024*1024, "Maximum log file size in bytes (not enforced: log files are not rotated)")
	rootCmd.PersistentFlags().BoolVar(&logCompress, "log-compress", false, "Compress rotated log files (no effect: log files are not rotated)")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("log_max_size", rootCmd.PersistentFlags().Lookup("log-max-size"))
	viper.BindPFlag("log_compress", rootCmd.PersistentFlags().Lookup("log-compress"))

	// Add learn command
	learnCmd := &cobra.Command{
		Use:   "learn",
		Short: "Learn a DFA from a target automaton definition",
		Long: `Run the L* learning loop against a target automaton loaded from a JSON
definition file. The learner asks batched membership queries against the
target and refines its hypothesis from equivalence counterexamples until the
learned automaton matches the target language.`,
		RunE: commands.RunLearn,
	}

	// Add learn command flags
	learnCmd.Flags().StringVar(&targetPath, "target", "", "Path to target automaton definition (required)")
	learnCmd.Flags().IntVar(&maxRounds, "max-rounds", 0, "Maximum refinement rounds (0 = unbounded)")
	learnCmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Maximum equivalence-check depth in symbols (0 = unbounded)")
	learnCmd.Flags().BoolVar(&printTable, "print-table", true, "Print the final observation table")
	learnCmd.Flags().StringVar(&reportPath, "report", "", "Directory for HTML report output (empty = no report)")

	viper.BindPFlag("target_path", learnCmd.Flags().Lookup("target"))
	viper.BindPFlag("max_rounds", learnCmd.Flags().Lookup("max-rounds"))
	viper.BindPFlag("max_depth", learnCmd.Flags().Lookup("max-depth"))
	viper.BindPFlag("print_table", learnCmd.Flags().Lookup("print-table"))
	viper.BindPFlag("report_path", learnCmd.Flags().Lookup("report"))

	rootCmd.AddCommand(learnCmd)

	// Execute
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
