package pipeline

import (
	"regexp"
	"strings"

	"mvdan.cc/xurls/v2"
)

// Removal patterns, applied in a fixed order within each pass:
// journal metadata and URLs first, then citation markers, then
// figure/table references, then everything outside the allowed
// character set. Bracketed citations must go before the character
// filter, otherwise their digits would survive as loose tokens.
var (
	metadataRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bISSN[:\s]*[\d-]+x?\b`),
		regexp.MustCompile(`(?i)\bimpact\s+factor[:\s]*\d+(?:\.\d+)?`),
		regexp.MustCompile(`(?i)\bvol(?:ume)?\.?\s*\d+\s*[,;]?\s*(?:no|issue)\.?\s*\d+`),
		regexp.MustCompile(`(?i)\bISO\s*\d+(?:[:-]\d+)?\b`),
		regexp.MustCompile(`(?i)\bdoi[:\s]*\S+`),
	}

	urlRe = xurls.Strict()

	citationRes = []*regexp.Regexp{
		// Numeric markers: [12], [3, 4], [5-7].
		regexp.MustCompile(`\[\d+(?:\s*[,-]\s*\d+)*\]`),
		// Parenthetical year citations: (Smith 2020), (Lee et al., 2019b).
		regexp.MustCompile(`\([^()]*\b(?:1[89]|20)\d{2}[a-z]?\b[^()]*\)`),
	}

	referenceRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:fig(?:ure)?|table)\.?\s*\d+[a-z]?\b`),
		regexp.MustCompile(`(?i)\breferences\b`),
		regexp.MustCompile(`(?i)\bbibliography\b`),
	}

	disallowedRe = regexp.MustCompile(`[^\p{L}\p{N}.,!?;:()\s]`)
)

const cleanMaxPasses = 4

// Clean normalizes raw extracted text: journal metadata, URLs, citation
// markers, figure/table references and stray glyphs are removed, and
// whitespace is collapsed to single spaces. Clean never fails; malformed
// input degrades to an over-cleaned string.
//
// Removing a glyph can uncover a new match (a figure reference split by a
// stripped symbol, for instance), so the passes repeat until the text is
// stable. That makes Clean idempotent: Clean(Clean(x)) == Clean(x).
func Clean(raw string) string {
	text := raw
	for range cleanMaxPasses {
		next := cleanPass(text)
		if next == text {
			break
		}
		text = next
	}

	return text
}

func cleanPass(text string) string {
	for _, re := range metadataRes {
		text = re.ReplaceAllString(text, " ")
	}

	text = urlRe.ReplaceAllString(text, " ")

	for _, re := range citationRes {
		text = re.ReplaceAllString(text, " ")
	}

	for _, re := range referenceRes {
		text = re.ReplaceAllString(text, " ")
	}

	text = disallowedRe.ReplaceAllString(text, "")

	return strings.Join(strings.Fields(text), " ")
}
