package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/match-evaluator/internal/types"
)

// cultureFallbackBase is the conservative estimate used when no explicit
// culture_fit score was supplied.
const cultureFallbackBase = 60

// maxQuotedValues caps how many culture values appear in an evidence quote.
const maxQuotedValues = 3

// Culture scores culture alignment. When the company supplies an explicit
// culture_fit score, that value passes through verbatim as the subscore and
// the second return is true, selecting the full culture weight. Otherwise a
// conservative base is used at reduced weight; present culture_values are
// noted as weak evidence without adjusting the score.
func Culture(company *types.CompanyProfile) (Result, bool) {
	res := Result{}

	if company != nil && company.CultureFit != nil {
		score := company.CultureFit.Score
		res.Score = clamp(score)
		res.Reasons = append(res.Reasons, fmt.Sprintf("culture fit assessed: %d/100", score))
		res.Evidence = append(res.Evidence, types.Evidence{
			Source: "company",
			Quote:  fmt.Sprintf("Culture fit score: %d", score),
			Field:  "culture",
		})
		return res, true
	}

	res.Score = cultureFallbackBase

	if company != nil && len(company.CultureValues) > 0 {
		values := company.CultureValues
		if len(values) > maxQuotedValues {
			values = values[:maxQuotedValues]
		}
		res.Evidence = append(res.Evidence, types.Evidence{
			Source: "company",
			Quote:  "Values: " + strings.Join(values, ", "),
			Field:  "culture",
		})
		res.Reasons = append(res.Reasons, "culture estimated from company values")
	} else {
		res.Missing = append(res.Missing, "company_profile.culture_fit")
		res.Reasons = append(res.Reasons, "limited culture data available")
	}

	return res, false
}
