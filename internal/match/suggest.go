package match

import (
	"sort"
)

// MinSuggestionScore is the normalized similarity below which a candidate is
// not offered as a suggestion.
const MinSuggestionScore = 0.5

// MaxSuggestions caps the number of suggestions returned by Suggest.
const MaxSuggestions = 3

// Suggest returns the candidates most similar to name, best first.
// Candidates scoring below MinSuggestionScore are dropped; ties keep the
// candidates' original order.
func Suggest(name string, candidates []string) []string {
	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	for _, c := range candidates {
		score := NormalizedLevenshteinScore(name, c)
		if score < MinSuggestionScore {
			continue
		}

		ranked = append(ranked, scored{name: c, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > MaxSuggestions {
		ranked = ranked[:MaxSuggestions]
	}

	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.name)
	}

	return out
}
