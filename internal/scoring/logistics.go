package scoring

import (
	"strings"

	"github.com/jonathan/match-evaluator/internal/types"
)

// Logistics adjustment constants.
const (
	logisticsBase         = 70
	locationMatchBonus    = 20
	locationPartialBonus  = 10
	locationMismatchMalus = 15
	salaryFitBonus        = 10
	salaryMisfitMalus     = 20
)

// Logistics scores location and salary compatibility. Missing salary figures
// are recorded as missing data without adjusting the score.
func Logistics(job *types.JobSpec, candidate *types.CandidateProfile) Result {
	res := Result{}
	score := logisticsBase

	if job.Location != nil && candidate.Locations != nil {
		jobType := strings.ToLower(job.Location.Type)
		candidateType := strings.ToLower(candidate.Locations.Type)

		switch {
		case jobType == candidateType || candidateType == "remote":
			score += locationMatchBonus
			res.Reasons = append(res.Reasons, "location type compatible: "+jobType)
		case jobType == "hybrid" && (candidateType == "onsite" || candidateType == "remote"):
			score += locationPartialBonus
			res.Reasons = append(res.Reasons, "location type partially compatible")
		default:
			score -= locationMismatchMalus
			res.Reasons = append(res.Reasons, "location type mismatch: needs "+jobType)
		}
	}

	if job.SalaryRange != nil && candidate.SalaryExpectation != nil {
		if job.SalaryRange.Max != nil && candidate.SalaryExpectation.Min != nil {
			if *job.SalaryRange.Max >= *candidate.SalaryExpectation.Min {
				score += salaryFitBonus
				res.Reasons = append(res.Reasons, "salary expectations aligned")
			} else {
				score -= salaryMisfitMalus
				res.Reasons = append(res.Reasons, "salary expectations misaligned")
			}
		} else {
			res.Missing = append(res.Missing, "complete_salary_information")
		}
	} else {
		res.Missing = append(res.Missing, "salary_range_or_expectation")
	}

	res.Score = clamp(score)
	return res
}
