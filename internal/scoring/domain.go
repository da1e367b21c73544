package scoring

import (
	"strings"

	"github.com/jonathan/match-evaluator/internal/types"
)

// Domain adjustment constants.
const (
	domainBase           = 50
	industryExactBonus   = 40
	industryPartialBonus = 20
	domainOverlapBonus   = 10
)

// Domain scores industry and domain-knowledge familiarity. An exact
// case-insensitive industry match beats a substring match; domain_knowledge
// overlap with the candidate's industry experience adds a further bonus.
func Domain(job *types.JobSpec, candidate *types.CandidateProfile) Result {
	res := Result{}
	score := domainBase

	if job.Industry != "" && len(candidate.IndustryExperience) > 0 {
		jobIndustry := strings.ToLower(job.Industry)
		industries := lowered(candidate.IndustryExperience)

		switch {
		case containsExact(industries, jobIndustry):
			score += industryExactBonus
			res.Reasons = append(res.Reasons, "industry experience: "+job.Industry)
			res.Evidence = append(res.Evidence, types.Evidence{
				Source: "candidate",
				Quote:  "Industry: " + job.Industry,
				Field:  "domain",
			})
		case containsPartial(industries, jobIndustry):
			score += industryPartialBonus
			res.Reasons = append(res.Reasons, "related industry experience")
		}
	}

	if len(job.DomainKnowledge) > 0 && len(candidate.IndustryExperience) > 0 {
		experience := toSet(lowered(candidate.IndustryExperience))
		if len(intersect(lowered(job.DomainKnowledge), experience)) > 0 {
			score += domainOverlapBonus
			res.Reasons = append(res.Reasons, "domain knowledge overlap")
		}
	}

	res.Score = clamp(score)
	return res
}

func lowered(terms []string) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = strings.ToLower(t)
	}
	return out
}

func containsExact(terms []string, target string) bool {
	for _, t := range terms {
		if t == target {
			return true
		}
	}
	return false
}

// containsPartial reports whether target and any term contain one another.
func containsPartial(terms []string, target string) bool {
	for _, t := range terms {
		if strings.Contains(t, target) || strings.Contains(target, t) {
			return true
		}
	}
	return false
}
