package pipeline

import (
	"strings"

	"paperdeck/internal/domain"
	"paperdeck/internal/sentences"
)

// Segment walks the cleaned text sentence-by-sentence and files each
// sentence into a canonical section bucket. The walk is a small state
// machine: it starts in Title, and a sentence containing a section's
// heading keyword switches the state to that section before the sentence
// is filed, so a section starts with its own heading sentence.
//
// When a sentence carries keywords of two different sections, the first
// section in domain.SectionOrder wins. That is a deliberate, documented
// heuristic, not a bug: headings are inferred from keywords, and the
// fixed enumeration order is the tie-break.
//
// Every canonical section key is always present in the returned map,
// except in the degenerate zero-sentence case, which yields {Title: ""}
// only.
func Segment(cleaned string) map[domain.Section]string {
	sents := sentences.Split(cleaned)
	if len(sents) == 0 {
		return map[domain.Section]string{domain.SectionTitle: ""}
	}

	buckets := make(map[domain.Section]*strings.Builder, len(domain.SectionOrder))
	for _, section := range domain.SectionOrder {
		buckets[section] = &strings.Builder{}
	}

	current := domain.SectionTitle
	for _, sentence := range sents {
		lower := strings.ToLower(sentence)

		for _, section := range domain.SectionOrder {
			if matchesSection(lower, section) {
				current = section
				break
			}
		}

		buckets[current].WriteString(sentence)
		buckets[current].WriteByte(' ')
	}

	out := make(map[domain.Section]string, len(buckets))
	for section, b := range buckets {
		out[section] = b.String()
	}

	return out
}

func matchesSection(lowerSentence string, section domain.Section) bool {
	for _, keyword := range domain.SectionKeywords[section] {
		if strings.Contains(lowerSentence, keyword) {
			return true
		}
	}

	return false
}
