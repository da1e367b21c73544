// Package engine orchestrates one candidate-job match evaluation: input
// validation, dimension scoring, aggregation and score card assembly.
// The engine is a pure function over its input: no I/O, no clock, no state
// between invocations.
package engine

import (
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/match-evaluator/internal/justify"
	"github.com/jonathan/match-evaluator/internal/scoring"
	"github.com/jonathan/match-evaluator/internal/types"
)

// Score card list caps. Earliest-produced entries are retained.
const (
	maxReasons    = 8
	maxEvidence   = 6
	maxTopReasons = 3
)

// dimensionCount is the number of scored dimensions.
const dimensionCount = 5

// Evaluate computes a ScoreCard for an already-validated request.
//
// The five dimension scorers have no data dependency on one another and run
// concurrently; each returns freshly allocated slices which are combined in
// fixed dimension order (skills, experience, culture, domain, logistics), so
// the result is identical to sequential evaluation.
func Evaluate(req *types.MatchRequest) (*types.ScoreCard, error) {
	company := req.Company()

	var results [dimensionCount]scoring.Result
	var explicitCulture bool

	g := new(errgroup.Group)
	g.Go(func() error {
		results[0] = scoring.Skills(&req.JobSpec, &req.CandidateProfile)
		return nil
	})
	g.Go(func() error {
		results[1] = scoring.Experience(&req.JobSpec, &req.CandidateProfile)
		return nil
	})
	g.Go(func() error {
		results[2], explicitCulture = scoring.Culture(company)
		return nil
	})
	g.Go(func() error {
		results[3] = scoring.Domain(&req.JobSpec, &req.CandidateProfile)
		return nil
	})
	g.Go(func() error {
		results[4] = scoring.Logistics(&req.JobSpec, &req.CandidateProfile)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sub := types.SubScores{
		Skills:     results[0].Score,
		Experience: results[1].Score,
		Culture:    results[2].Score,
		Domain:     results[3].Score,
		Logistics:  results[4].Score,
	}

	weights := scoring.Resolve(explicitCulture)
	overall := scoring.Aggregate(sub, weights)
	decision := scoring.Decide(overall)

	reasons := make([]string, 0, maxReasons)
	missing := make([]string, 0, dimensionCount)
	evidence := make([]types.Evidence, 0, maxEvidence)
	for _, res := range results {
		reasons = append(reasons, res.Reasons...)
		missing = append(missing, res.Missing...)
		evidence = append(evidence, res.Evidence...)
	}

	topReasons := reasons
	if len(topReasons) > maxTopReasons {
		topReasons = topReasons[:maxTopReasons]
	}
	justification := justify.Compose(overall, sub, topReasons, len(missing))

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	if len(evidence) > maxEvidence {
		evidence = evidence[:maxEvidence]
	}

	return &types.ScoreCard{
		OverallScore:  overall,
		SubScores:     sub,
		Decision:      decision,
		Justification: justification,
		Reasons:       reasons,
		MissingData:   missing,
		Evidence:      evidence,
	}, nil
}
