package faq

import (
	"sort"
	"strings"
)

// Fuzzy tier tuning. Threshold rejects weak matches, distance is the window
// within which a match location carries no penalty, minMatchLength drops
// query tokens too short to be meaningful.
const (
	fuzzyThreshold      = 0.4
	fuzzyDistance       = 100
	fuzzyMinMatchLength = 3

	// A token whose best per-word error rate exceeds this is treated as
	// unmatched and scores 1.
	maxTokenErrorRate = 0.5
)

// fuzzyFieldWeights: question dominates, keywords next, answer least.
var fuzzyFieldWeights = []struct {
	weight float64
	text   func(Entry) string
}{
	{0.5, func(e Entry) string { return e.Question }},
	{0.3, func(e Entry) string { return strings.Join(e.Keywords, " ") }},
	{0.2, func(e Entry) string { return e.Answer }},
}

// fuzzySearch approximately matches the query against every entry and returns
// hits with score <= threshold, ascending (best first).
func fuzzySearch(entries []Entry, query string) []Hit {
	tokens := fuzzyTokens(query)
	if len(tokens) == 0 {
		return nil
	}

	hits := make([]Hit, 0, 8)
	for _, entry := range entries {
		score, ok := entryScore(entry, tokens)
		if !ok || score > fuzzyThreshold {
			continue
		}
		hits = append(hits, Hit{Entry: entry, Score: score, Method: MethodFuzzy})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score < hits[j].Score })
	return hits
}

// fuzzyTokens lowercases the query and drops tokens shorter than the minimum
// match length.
func fuzzyTokens(query string) []string {
	raw := strings.Fields(strings.ToLower(query))
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.Trim(t, ".,!?;:\"'()")
		if len(t) >= fuzzyMinMatchLength {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// entryScore combines weighted per-field scores, normalized over the fields
// that matched at least one token. Fields with no match at all carry no
// weight; an entry with no matching field is rejected outright.
func entryScore(entry Entry, tokens []string) (float64, bool) {
	var total, weightSum float64
	for _, field := range fuzzyFieldWeights {
		score, ok := fieldScore(field.text(entry), tokens)
		if !ok {
			continue
		}
		total += field.weight * score
		weightSum += field.weight
	}
	if weightSum == 0 {
		return 1, false
	}
	return total / weightSum, true
}

// fieldScore averages the per-token scores against one field's text.
func fieldScore(text string, tokens []string) (float64, bool) {
	text = strings.ToLower(text)
	if text == "" {
		return 1, false
	}

	var sum float64
	matched := false
	for _, token := range tokens {
		score := tokenScore(text, token)
		if score < 1 {
			matched = true
		}
		sum += score
	}
	return sum / float64(len(tokens)), matched
}

// tokenScore scores one query token against a field: 0 for an exact early
// substring match, growing with edit errors and with how far into the text
// the match sits (beyond the distance window the position penalty saturates).
func tokenScore(text, token string) float64 {
	if idx := strings.Index(text, token); idx >= 0 {
		return positionPenalty(idx)
	}

	// No exact occurrence: take the best word-level edit distance.
	bestRate := 1.0
	bestOffset := 0
	offset := 0
	for _, word := range strings.Fields(text) {
		dist := levenshtein(word, token)
		rate := float64(dist) / float64(len(token))
		if rate < bestRate {
			bestRate = rate
			bestOffset = offset
		}
		offset += len(word) + 1
	}

	if bestRate > maxTokenErrorRate {
		return 1
	}

	score := bestRate + positionPenalty(bestOffset)
	if score > 1 {
		return 1
	}
	return score
}

// positionPenalty maps a match offset to [0, 0.2]: matches inside the distance
// window cost proportionally little, anything past it costs the full penalty.
func positionPenalty(idx int) float64 {
	if idx >= fuzzyDistance {
		return 0.2
	}
	return 0.2 * float64(idx) / float64(fuzzyDistance)
}

func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
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
