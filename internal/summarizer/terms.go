package summarizer

import "sort"

// KeyTerms returns the n most frequent content terms of text, unigrams
// and adjacent bigrams, stop words excluded. Ties break by first
// occurrence, so the result is deterministic for identical input.
func KeyTerms(text string, n int) []string {
	if n <= 0 {
		return nil
	}

	tokens := contentTokens(text)
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int, len(tokens))
	firstSeen := make(map[string]int, len(tokens))

	note := func(term string, pos int) {
		if _, ok := firstSeen[term]; !ok {
			firstSeen[term] = pos
		}
		counts[term]++
	}

	for i, token := range tokens {
		note(token, i)
		if i+1 < len(tokens) {
			note(token+" "+tokens[i+1], i)
		}
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}

	sort.Slice(terms, func(a, b int) bool {
		if counts[terms[a]] != counts[terms[b]] {
			return counts[terms[a]] > counts[terms[b]]
		}
		// A unigram and the bigram starting at it share a position.
		if firstSeen[terms[a]] != firstSeen[terms[b]] {
			return firstSeen[terms[a]] < firstSeen[terms[b]]
		}

		return terms[a] < terms[b]
	})

	if len(terms) > n {
		terms = terms[:n]
	}

	return terms
}
