/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: learn.go
Description: Learn command implementation for the Akaylee Learner. Loads a
target automaton definition, runs the L* learning loop against simulated
membership and equivalence oracles, and prints the resulting hypothesis,
observation table, and query statistics.
*/

package commands

import (
	"context"
	"fmt"

	"github.com/kleascm/akaylee-learner/pkg/automata"
	"github.com/kleascm/akaylee-learner/pkg/learner"
	"github.com/kleascm/akaylee-learner/pkg/logging"
	"github.com/kleascm/akaylee-learner/pkg/oracle"
	"github.com/kleascm/akaylee-learner/pkg/reporting"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunLearn executes the main learning process
func RunLearn(cmd *cobra.Command, args []string) error {
	fmt.Println("🧠 Akaylee Learner - Starting Learning Session")
	fmt.Println("==============================================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	// Bring up the full logging system (timestamped file + console)
	logFormat := logging.LogFormat(viper.GetString("log_format"))
	if viper.GetBool("json_logs") {
		logFormat = logging.LogFormatJSON
	}
	logSystem, err := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    logFormat,
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  viper.GetInt("log_max_files"),
		MaxSize:   viper.GetInt64("log_max_size"),
		Timestamp: true,
		Caller:    false,
		Colors:    !viper.GetBool("json_logs"),
		Compress:  viper.GetBool("log_compress"),
	})
	if err != nil {
		return fmt.Errorf("failed to setup logging system: %w", err)
	}
	defer logSystem.Close()
	runLogger := logSystem.GetLogger()

	config := createLearnerConfig()
	if config.TargetPath == "" {
		return fmt.Errorf("target automaton definition is required - use --target")
	}

	// Load the target automaton
	target, alphabet, err := automata.LoadDefinition(config.TargetPath)
	if err != nil {
		return fmt.Errorf("failed to load target automaton: %w", err)
	}
	runLogger.WithFields(logrus.Fields{
		"target":  config.TargetPath,
		"states":  target.NumStates(),
		"symbols": alphabet.Size(),
	}).Info("Target automaton loaded")

	// Assemble oracles
	membership, err := oracle.NewSimulatorOracle(target)
	if err != nil {
		return fmt.Errorf("failed to create membership oracle: %w", err)
	}
	counting := oracle.NewCountingOracle[string, bool](membership, runLogger)
	equivalence, err := oracle.NewProductEquivalenceOracle(target)
	if err != nil {
		return fmt.Errorf("failed to create equivalence oracle: %w", err)
	}
	equivalence.SetMaxDepth(config.MaxDepth)

	// Create the learner
	lstar, err := learner.New(alphabet, counting)
	if err != nil {
		return fmt.Errorf("failed to create learner: %w", err)
	}
	lstar.SetLogger(runLogger)

	// Run the learning loop
	ctx := context.Background()
	hypothesis, rounds, err := learner.Run(ctx, lstar, equivalence, config.MaxRounds)
	if err != nil {
		return fmt.Errorf("learning failed: %w", err)
	}

	stats := lstar.Stats()
	logSystem.LogStats(stats.Batches, stats.Queries, stats.Refinements, nil)
	fmt.Println()
	fmt.Println("✅ Learning converged")
	fmt.Printf("   States:      %d\n", hypothesis.NumStates())
	fmt.Printf("   Rounds:      %d\n", rounds)
	fmt.Printf("   Batches:     %d\n", counting.Batches())
	fmt.Printf("   Queries:     %d\n", counting.Queries())
	fmt.Println()

	if config.PrintTable {
		fmt.Println("Observation table:")
		fmt.Println(lstar.ObservationTable().Render(formatBool))
	}

	printHypothesis(hypothesis)

	if config.ReportPath != "" {
		generator, err := reporting.NewReportGenerator(config.ReportPath, runLogger)
		if err != nil {
			return fmt.Errorf("failed to create report generator: %w", err)
		}
		data, err := reporting.BuildReportData("Learning Run", lstar.ID(), rounds, stats, lstar.ObservationTable(), hypothesis)
		if err != nil {
			return fmt.Errorf("failed to assemble report data: %w", err)
		}
		path, err := generator.GenerateReport(data)
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Printf("Report written to %s\n", path)
	}

	return nil
}

// formatBool renders observation table cells compactly
func formatBool(d bool) string {
	if d {
		return "1"
	}
	return "0"
}

// printHypothesis prints the learned automaton's transition table
func printHypothesis(hypothesis *automata.DFA[string]) {
	alphabet := hypothesis.Alphabet()
	fmt.Println("Hypothesis:")
	for state := 0; state < hypothesis.NumStates(); state++ {
		marker := " "
		if state == hypothesis.InitialState() {
			marker = ">"
		}
		acceptance := " "
		if hypothesis.IsAccepting(state) {
			acceptance = "*"
		}
		fmt.Printf("%s q%d %s ", marker, state, acceptance)
		for symbolIndex := 0; symbolIndex < alphabet.Size(); symbolIndex++ {
			fmt.Printf(" %v→q%d", alphabet.SymbolAt(symbolIndex), hypothesis.Transition(state, symbolIndex))
		}
		fmt.Println()
	}
}
