package summarizer

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"

	"paperdeck/internal/sentences"
)

const defaultExtractiveSentences = 5

var tokenRe = regexp.MustCompile(`\p{L}+(?:'\p{L}+)*`)

// Extractive ranks sentences by TF-IDF weight and keeps the top ones.
// Each sentence is treated as its own pseudo-document for the inverse
// document frequency, so terms that appear everywhere contribute
// nothing and distinctive terms dominate the ranking.
type Extractive struct {
	maxSentences int
}

// NewExtractive creates an extractive summarizer that keeps at most
// maxSentences sentences per summary.
func NewExtractive(maxSentences int) *Extractive {
	if maxSentences <= 0 {
		maxSentences = defaultExtractiveSentences
	}

	return &Extractive{maxSentences: maxSentences}
}

// Summarize selects the highest-scoring sentences and joins them back in
// original document order, so the summary keeps the narrative flow even
// though selection was score-based. Ties go to the earlier sentence,
// which makes the output deterministic. Never returns an error; empty
// input yields an empty summary.
func (e *Extractive) Summarize(_ context.Context, input Input) (string, error) {
	sents := sentences.Split(input.Text)
	if len(sents) == 0 {
		return "", nil
	}

	if len(sents) <= e.maxSentences {
		return strings.Join(sents, " "), nil
	}

	tokenized := make([][]string, len(sents))
	documentFrequency := make(map[string]int)

	for i, sentence := range sents {
		tokenized[i] = contentTokens(sentence)

		seen := make(map[string]struct{}, len(tokenized[i]))
		for _, token := range tokenized[i] {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			documentFrequency[token]++
		}
	}

	total := float64(len(sents))
	scores := make([]float64, len(sents))

	for i, tokens := range tokenized {
		termFrequency := make(map[string]float64, len(tokens))
		for _, token := range tokens {
			termFrequency[token]++
		}

		for token, tf := range termFrequency {
			idf := math.Log(total / float64(documentFrequency[token]))
			scores[i] += tf * idf
		}
	}

	indices := make([]int, len(sents))
	for i := range indices {
		indices[i] = i
	}

	// Stable sort keeps equal scores in index order: lower index wins.
	sort.SliceStable(indices, func(a, b int) bool {
		return scores[indices[a]] > scores[indices[b]]
	})

	selected := indices[:e.maxSentences]
	sort.Ints(selected)

	picked := make([]string, len(selected))
	for i, idx := range selected {
		picked[i] = sents[idx]
	}

	return strings.Join(picked, " "), nil
}

func contentTokens(sentence string) []string {
	raw := tokenRe.FindAllString(strings.ToLower(sentence), -1)

	tokens := raw[:0]
	for _, token := range raw {
		if _, ok := stopwords[token]; ok {
			continue
		}
		tokens = append(tokens, token)
	}

	return tokens
}
