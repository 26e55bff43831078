package cli

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// correctThreshold is the minimum Jaro-Winkler similarity before a typo is
// rewritten to a known name.
const correctThreshold = 0.8

// correctInput maps a user-typed name onto the closest known name. An exact
// case-insensitive match always wins; otherwise the best-scoring candidate
// above the threshold is taken, and input that resembles nothing is returned
// untouched so the engine can reject it with its own error. The engine never
// sees fuzzy logic: correction happens entirely out here.
func correctInput(input string, options []string) string {
	for _, opt := range options {
		if strings.EqualFold(opt, input) {
			return opt
		}
	}

	best := input
	bestScore := 0.0
	for _, opt := range options {
		score := matchr.JaroWinkler(strings.ToLower(input), strings.ToLower(opt), false)
		if score > bestScore {
			best = opt
			bestScore = score
		}
	}
	if bestScore >= correctThreshold {
		return best
	}
	return input
}
