package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/match-evaluator/internal/engine"
	"github.com/jonathan/match-evaluator/internal/logger"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a candidate-job match request",
	Long:  "Evaluate a match request document (job_spec, candidate_profile, optional company data) and write the ScoreCard JSON, or a structured error object, to stdout.",
	RunE:  runEvaluate,
}

var (
	requestFile string
	pretty      bool
	jsonLogs    bool
	debug       bool
)

func init() {
	evaluateCmd.Flags().StringVarP(&requestFile, "request", "r", "-", "Path to request JSON document (\"-\" reads stdin)")
	evaluateCmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Indent the output JSON")
	evaluateCmd.Flags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON")
	evaluateCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	log, err := logger.New(jsonLogs, debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck // stderr sync failure is not actionable

	var document []byte
	if requestFile == "-" {
		document, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read request from stdin: %w", err)
		}
	} else {
		document, err = os.ReadFile(requestFile)
		if err != nil {
			return fmt.Errorf("failed to read request file: %w", err)
		}
	}

	evaluationID := uuid.NewString()
	log.Debug("evaluating match request",
		zap.String("evaluation_id", evaluationID),
		zap.Int("request_bytes", len(document)),
	)

	out := engine.EvaluateJSON(document)

	// Peek at the outcome for the log line; errors are data, not failures.
	var outcome struct {
		Error        string `json:"error"`
		OverallScore int    `json:"overall_score"`
		Decision     string `json:"decision"`
	}
	_ = json.Unmarshal(out, &outcome)
	if outcome.Error != "" {
		log.Info("evaluation returned error object",
			zap.String("evaluation_id", evaluationID),
			zap.String("error", outcome.Error),
		)
	} else {
		log.Info("evaluation complete",
			zap.String("evaluation_id", evaluationID),
			zap.Int("overall_score", outcome.OverallScore),
			zap.String("decision", outcome.Decision),
		)
	}

	if pretty {
		var indented bytes.Buffer
		if err := json.Indent(&indented, out, "", "  "); err == nil {
			out = indented.Bytes()
		}
	}

	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
