// Package similarity provides normalized Levenshtein string similarity,
// used to re-rank fuzzy title matches.
package similarity

// Distance returns the Levenshtein edit distance between a and b, computed
// over Unicode code points with unit cost for insertion, deletion, and
// substitution.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min3(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

// NormalizedDistance returns the edit distance divided by the length of the
// longer string, in [0,1]. Two empty strings are at distance 0.
func NormalizedDistance(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))
	longer := la
	if lb > longer {
		longer = lb
	}
	if longer == 0 {
		return 0
	}
	return float64(Distance(a, b)) / float64(longer)
}

// Score converts normalized distance into a similarity score via 1/(1+d):
// exactly 1.0 for identical strings, decreasing to 0.5 for strings with
// nothing in common.
func Score(a, b string) float64 {
	return 1.0 / (1.0 + NormalizedDistance(a, b))
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
