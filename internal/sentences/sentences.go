// Package sentences splits plain English text into sentences.
//
// The splitter is regex-based: a sentence is a run of non-terminator
// characters followed by one or more of ". ! ?". Abbreviations such as
// "et al." therefore split early; that is a known imprecision the
// pipeline tolerates, since it only needs stable, deterministic
// boundaries, not a full tokenizer.
package sentences

import (
	"regexp"
	"strings"
)

var sentenceRe = regexp.MustCompile(`[^.!?]+[.!?]+|[^.!?]+$`)

// Split returns the sentences of text in document order, each trimmed of
// surrounding whitespace. A trailing fragment without a terminator counts
// as a sentence. Empty or whitespace-only input yields nil.
func Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var out []string
	for _, chunk := range sentenceRe.FindAllString(text, -1) {
		trimmed := strings.TrimSpace(chunk)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}

	return out
}
