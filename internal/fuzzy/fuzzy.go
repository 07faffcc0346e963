// Package fuzzy provides the bounded edit-distance matcher used for
// typo-tolerant scoring.
package fuzzy

// Default matcher bounds.
const (
	// DefaultMaxDistance is the largest edit distance that still
	// counts as a fuzzy match.
	DefaultMaxDistance = 2
	// DefaultPrefixLength is the shortest token considered for
	// fuzzy matching.
	DefaultPrefixLength = 2
)

// Distance computes the Levenshtein edit distance between a and b:
// the minimum number of single-character insertions, deletions, and
// substitutions transforming one into the other. Deterministic,
// symmetric, and Distance(a, a) == 0.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Two-row DP over the (|b|+1) x (|a|+1) table.
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for j := 0; j <= len(a); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(b); i++ {
		curr[0] = i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

// Match reports whether a and b are within maxDistance edits, and the
// distance itself. Tokens shorter than prefixLength never match.
func Match(a, b string, maxDistance, prefixLength int) (int, bool) {
	if len(a) < prefixLength || len(b) < prefixLength {
		return 0, false
	}
	// Cheap lower bound: length difference alone exceeds the cap.
	if diff := len(a) - len(b); diff > maxDistance || -diff > maxDistance {
		return 0, false
	}
	d := Distance(a, b)
	if d > maxDistance {
		return d, false
	}
	return d, true
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
