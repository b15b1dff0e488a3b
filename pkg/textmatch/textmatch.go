// Package textmatch implements the string-similarity primitives used for
// alias and column resolution: plain Levenshtein ratio and a token-set ratio
// that is insensitive to word order and duplicated words.
package textmatch

import (
	"sort"
	"strings"
)

// Levenshtein calculates the edit distance between two strings using a
// two-row DP table.
func Levenshtein(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 1
			}
			curr[j] = minInt(
				curr[j-1]+1,    // insertion
				prev[j]+1,      // deletion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}

// Ratio returns a 0-100 similarity score derived from edit distance.
func Ratio(a, b string) int {
	if a == b {
		return 100
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 100
	}
	dist := Levenshtein(a, b)
	return (longest - dist) * 100 / longest
}

// TokenSetRatio scores two phrases ignoring word order and repetition:
// both sides are tokenized into sorted word sets and the best pairwise
// ratio of {intersection, intersection+restA, intersection+restB} wins.
// A full subset match scores 100.
func TokenSetRatio(a, b string) int {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	var common, onlyA, onlyB []string
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			common = append(common, tok)
		} else {
			onlyA = append(onlyA, tok)
		}
	}
	for tok := range setB {
		if _, ok := setA[tok]; !ok {
			onlyB = append(onlyB, tok)
		}
	}
	sort.Strings(common)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	base := strings.Join(common, " ")
	combinedA := strings.TrimSpace(base + " " + strings.Join(onlyA, " "))
	combinedB := strings.TrimSpace(base + " " + strings.Join(onlyB, " "))

	if base != "" && (base == combinedA || base == combinedB) {
		return 100
	}

	best := Ratio(combinedA, combinedB)
	if base != "" {
		if r := Ratio(base, combinedA); r > best {
			best = r
		}
		if r := Ratio(base, combinedB); r > best {
			best = r
		}
	}
	return best
}

// BestMatch returns the candidate with the highest token-set ratio against
// query, provided it meets the cutoff.
func BestMatch(query string, candidates []string, cutoff int) (string, int, bool) {
	bestScore := -1
	bestValue := ""
	for _, cand := range candidates {
		score := TokenSetRatio(query, cand)
		if score > bestScore {
			bestScore = score
			bestValue = cand
		}
	}
	if bestScore >= cutoff && bestValue != "" {
		return bestValue, bestScore, true
	}
	return "", 0, false
}

// TopMatches returns up to limit candidates scoring at or above the cutoff,
// best first. Order among equal scores follows candidate order.
func TopMatches(query string, candidates []string, cutoff, limit int) []string {
	type scored struct {
		value string
		score int
		pos   int
	}
	var hits []scored
	for pos, cand := range candidates {
		if score := TokenSetRatio(query, cand); score >= cutoff {
			hits = append(hits, scored{value: cand, score: score, pos: pos})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].pos < hits[j].pos
	})
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.value
	}
	return out
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		set[tok] = struct{}{}
	}
	return set
}

func minInt(a, b, c int) int {
	if a <= b && a <= c {
		return a
	}
	if b <= c {
		return b
	}
	return c
}
