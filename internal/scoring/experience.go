package scoring

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/match-evaluator/internal/types"
)

// Experience adjustment constants. Empirically chosen; changing them moves
// decision outcomes, so they stay as-is.
const (
	experienceBase  = 50
	yearsMetBonus   = 30
	yearsShortMalus = 20
	seniorityBonus  = 20
	seniorityMalus  = 10
)

// seniorityKeywords maps a job seniority level to title keywords that count
// as aligned for a candidate.
var seniorityKeywords = map[string][]string{
	"junior": {"junior", "graduate", "entry"},
	"mid":    {"mid", "intermediate", "engineer", "developer"},
	"senior": {"senior", "sr", "lead"},
	"lead":   {"lead", "principal", "staff", "architect"},
}

// Experience scores years-of-experience and seniority alignment.
// An absent years_min requirement is recorded as missing data and leaves the
// base score untouched.
func Experience(job *types.JobSpec, candidate *types.CandidateProfile) Result {
	res := Result{}
	score := experienceBase

	if job.ExperienceRequirements != nil && job.ExperienceRequirements.YearsMin != nil {
		yearsMin := *job.ExperienceRequirements.YearsMin
		years := candidate.YearsExperience

		if years >= yearsMin {
			score += yearsMetBonus
			res.Reasons = append(res.Reasons, fmt.Sprintf("%s years meets %s+ requirement", formatYears(years), formatYears(yearsMin)))
			res.Evidence = append(res.Evidence, types.Evidence{
				Source: "candidate",
				Quote:  fmt.Sprintf("%s years experience", formatYears(years)),
				Field:  "experience",
			})
		} else {
			score -= yearsShortMalus
			res.Reasons = append(res.Reasons, fmt.Sprintf("%s years below %s+ requirement", formatYears(years), formatYears(yearsMin)))
		}
	} else {
		res.Missing = append(res.Missing, "experience_requirements.years_min")
	}

	if job.Seniority != "" && job.Seniority != "unspecified" {
		jobSeniority := strings.ToLower(job.Seniority)
		if keywords, known := seniorityKeywords[jobSeniority]; known {
			title := strings.ToLower(candidate.CurrentTitle)
			if containsAny(title, keywords) {
				score += seniorityBonus
				res.Reasons = append(res.Reasons, "seniority aligned: "+jobSeniority)
			} else {
				score -= seniorityMalus
				res.Reasons = append(res.Reasons, "seniority mismatch: expects "+jobSeniority)
			}
		}
	}

	res.Score = clamp(score)
	return res
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func formatYears(years float64) string {
	return strconv.FormatFloat(years, 'g', -1, 64)
}
