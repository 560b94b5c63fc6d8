// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package spell

// Nearest returns the candidate closest to word, or an empty string
// if no candidate is close enough to be a likely misspelling.
func Nearest(word string, candidates []string) string {
	var result string
	best := len(word)/2 + 1

	for _, candidate := range candidates {
		dist := distance(word, candidate)
		if dist < best {
			best = dist
			result = candidate
		}
	}
	return result
}

// distance is the Levenshtein edit distance between a and b
func distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
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
