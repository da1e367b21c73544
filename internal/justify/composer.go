// Package justify renders the short natural-language explanation attached to
// a score card.
package justify

import (
	"fmt"
	"strings"

	"github.com/jonathan/match-evaluator/internal/types"
)

const (
	// maxWords is the hard cap on justification length.
	maxWords = 100
	// truncateWords is the length after hard truncation, before the ellipsis.
	truncateWords = 97
	// maxFactors is how many of the top reasons make it into the text.
	maxFactors = 2
	// weakDimensionCutoff controls whether the lowest dimension is named.
	weakDimensionCutoff = 60
)

// dimensionNames is the fixed tie-breaking order for best/worst dimension.
var dimensionNames = []string{"skills", "experience", "culture", "domain", "logistics"}

// Compose builds the justification string: a qualitative label with the
// numeric score, the strongest dimension, the weakest dimension when it is
// below 60, up to two of the top reasons, and a note when more than one
// missing-data item exists. The result never exceeds 100 words; overlong
// text is hard-truncated to 97 words plus an ellipsis, which by construction
// never cuts the leading score statement.
func Compose(overall int, sub types.SubScores, topReasons []string, missingCount int) string {
	var b strings.Builder

	switch {
	case overall >= 75:
		fmt.Fprintf(&b, "Strong match (%d/100). ", overall)
	case overall >= 50:
		fmt.Fprintf(&b, "Moderate match (%d/100). ", overall)
	default:
		fmt.Fprintf(&b, "Poor match (%d/100). ", overall)
	}

	scores := []int{sub.Skills, sub.Experience, sub.Culture, sub.Domain, sub.Logistics}
	best, worst := 0, 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
		if s < scores[worst] {
			worst = i
		}
	}

	fmt.Fprintf(&b, "Strongest: %s (%d/100). ", dimensionNames[best], scores[best])
	if scores[worst] < weakDimensionCutoff {
		fmt.Fprintf(&b, "Weakest: %s (%d/100). ", dimensionNames[worst], scores[worst])
	}

	if len(topReasons) > 0 {
		factors := topReasons
		if len(factors) > maxFactors {
			factors = factors[:maxFactors]
		}
		fmt.Fprintf(&b, "Key factors: %s. ", strings.Join(factors, "; "))
	}

	if missingCount > 1 {
		fmt.Fprintf(&b, "Limited by missing data (%d items).", missingCount)
	}

	justification := strings.TrimSpace(b.String())
	words := strings.Fields(justification)
	if len(words) > maxWords {
		justification = strings.Join(words[:truncateWords], " ") + "..."
	}

	return justification
}
