package semanticscholar

import (
	"github.com/helixir/semanticscholar-go/internal/similarity"
)

// bestMatch picks the candidate with the highest combined score: the
// equal-weighted mean of the remote match score and the Levenshtein
// similarity between query and title. Ties keep the first candidate in
// response order. Returns nil for an empty candidate list.
func bestMatch(query string, candidates []Paper) *Paper {
	best := -1
	bestScore := 0.0
	for i, p := range candidates {
		remote := 0.0
		if p.MatchScore != nil {
			remote = *p.MatchScore
		}
		title := ""
		if p.Title != nil {
			title = *p.Title
		}
		score := 0.5*remote + 0.5*similarity.Score(query, title)
		if best == -1 || score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best == -1 {
		return nil
	}
	return &candidates[best]
}
