package scoring

import "github.com/jonathan/match-evaluator/internal/types"

// Decision band thresholds on the overall score.
const (
	proceedThreshold = 75
	maybeThreshold   = 50
)

// Aggregate combines the five subscores under a weight set into an overall
// score. With subscores in [0,100] and weights summing to 100, the result is
// in [0,100] by construction; integer division floors.
func Aggregate(sub types.SubScores, w WeightSet) int {
	return (sub.Skills*w.Skills +
		sub.Experience*w.Experience +
		sub.Culture*w.Culture +
		sub.Domain*w.Domain +
		sub.Logistics*w.Logistics) / 100
}

// Decide maps an overall score onto its decision band. The band is a pure
// function of the score; nothing else may override it.
func Decide(overall int) types.Decision {
	switch {
	case overall >= proceedThreshold:
		return types.DecisionProceed
	case overall >= maybeThreshold:
		return types.DecisionMaybe
	default:
		return types.DecisionReject
	}
}
