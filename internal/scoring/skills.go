package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/match-evaluator/internal/parsing"
	"github.com/jonathan/match-evaluator/internal/types"
)

// Component weights within the skills subscore.
const (
	mustHaveShare   = 70
	niceToHaveShare = 15
	techStackShare  = 15
)

// Skills scores skill alignment between the job and the candidate.
// Must-have coverage dominates; nice-to-have skills and general tech-stack
// overlap each contribute partial credit.
func Skills(job *types.JobSpec, candidate *types.CandidateProfile) Result {
	res := Result{}

	candidateSkills := toSet(parsing.NormalizeTech(candidate.Skills))
	mustHave := parsing.NormalizeTech(job.MustHaveHardSkills)
	niceToHave := parsing.NormalizeTech(job.NiceToHaveHardSkills)
	techStack := parsing.NormalizeTech(job.TechStack)

	mustHaveMatches := intersect(mustHave, candidateSkills)
	mustHaveCoverage := float64(len(mustHaveMatches)) / math.Max(float64(len(mustHave)), 1)

	niceToHaveCoverage := 0.0
	if len(niceToHave) > 0 {
		niceToHaveCoverage = float64(len(intersect(niceToHave, candidateSkills))) / float64(len(niceToHave))
	}

	techCoverage := 0.0
	if len(techStack) > 0 {
		techCoverage = float64(len(intersect(techStack, candidateSkills))) / float64(len(techStack))
	}

	res.Score = clamp(int(math.Round(
		mustHaveShare*mustHaveCoverage + niceToHaveShare*niceToHaveCoverage + techStackShare*techCoverage,
	)))

	if len(mustHaveMatches) > 0 {
		sorted := sortedCopy(mustHaveMatches)
		res.Evidence = append(res.Evidence, types.Evidence{
			Source: "candidate",
			Quote:  "Skills: " + strings.Join(sorted, ", "),
			Field:  "skills",
		})
		res.Reasons = append(res.Reasons, fmt.Sprintf("matches %d/%d must-have skills", len(mustHaveMatches), len(mustHave)))
	}

	if len(mustHave) > len(mustHaveMatches) {
		missing := sortedCopy(subtract(mustHave, toSet(mustHaveMatches)))
		res.Reasons = append(res.Reasons, fmt.Sprintf("missing %d must-have skills: %s", len(missing), strings.Join(missing, ", ")))
	}

	return res
}

func toSet(terms []string) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, t := range terms {
		set[t] = true
	}
	return set
}

// intersect returns the members of terms present in set, preserving order.
func intersect(terms []string, set map[string]bool) []string {
	matched := make([]string, 0, len(terms))
	for _, t := range terms {
		if set[t] {
			matched = append(matched, t)
		}
	}
	return matched
}

// subtract returns the members of terms absent from set, preserving order.
func subtract(terms []string, set map[string]bool) []string {
	rest := make([]string, 0, len(terms))
	for _, t := range terms {
		if !set[t] {
			rest = append(rest, t)
		}
	}
	return rest
}

func sortedCopy(terms []string) []string {
	out := make([]string, len(terms))
	copy(out, terms)
	sort.Strings(out)
	return out
}
