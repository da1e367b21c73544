// Package scoring implements the five dimension scorers, the weight tables
// and the score aggregation for candidate-job match evaluation.
package scoring

import "github.com/jonathan/match-evaluator/internal/types"

// Result is the output of a single dimension scorer. Every scorer returns
// freshly allocated slices so scorers can run concurrently without sharing
// buffers.
type Result struct {
	Score    int
	Evidence []types.Evidence
	Reasons  []string
	Missing  []string
}

// clamp bounds a score to [0,100].
func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
