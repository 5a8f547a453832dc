package summarizer

import (
	"strings"

	"paperdeck/internal/sentences"
)

const (
	fallbackSentenceCount = 3
	fallbackMaxRunes      = 500
)

// Fallback is the dependency-free summarizer of last resort: the first
// three sentences of the text, or, when no sentence boundary can be
// found, the first 500 characters with a truncation marker. It cannot
// fail.
func Fallback(text string) string {
	sents := sentences.Split(text)
	if len(sents) == 0 {
		return truncateRunes(text)
	}

	if len(sents) > fallbackSentenceCount {
		sents = sents[:fallbackSentenceCount]
	}

	return strings.Join(sents, " ")
}

func truncateRunes(text string) string {
	normalized := strings.Join(strings.Fields(text), " ")

	runes := []rune(normalized)
	if len(runes) <= fallbackMaxRunes {
		return normalized
	}

	trimmed := strings.TrimSpace(string(runes[:fallbackMaxRunes]))
	if trimmed == "" {
		return normalized
	}

	return trimmed + "..."
}
