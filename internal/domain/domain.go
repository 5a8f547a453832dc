// Package domain holds the shared value types of the summarization pipeline.
package domain

// Section is one of the fixed logical regions of a research paper.
type Section string

const (
	SectionTitle        Section = "Title"
	SectionAbstract     Section = "Abstract"
	SectionIntroduction Section = "Introduction"
	SectionMethods      Section = "Methods"
	SectionResults      Section = "Results"
	SectionDiscussion   Section = "Discussion"
	SectionConclusion   Section = "Conclusion"
)

// SectionOrder is the canonical enumeration order. It drives both the
// segmenter's keyword scan (first match wins) and the presentation order
// used by renderers, so it must not be reordered casually.
var SectionOrder = []Section{
	SectionTitle,
	SectionAbstract,
	SectionIntroduction,
	SectionMethods,
	SectionResults,
	SectionDiscussion,
	SectionConclusion,
}

// SectionKeywords maps a section to the lowercase substrings that mark a
// heading sentence. Title has no keywords: it is the segmenter's start state
// and is never re-entered.
var SectionKeywords = map[Section][]string{
	SectionAbstract:     {"abstract"},
	SectionIntroduction: {"introduction", "background"},
	SectionMethods:      {"methods", "methodology", "materials and methods", "experimental setup"},
	SectionResults:      {"results", "findings"},
	SectionDiscussion:   {"discussion"},
	SectionConclusion:   {"conclusion", "concluding remarks"},
}

// Method records how a section summary was produced.
type Method string

const (
	MethodAbstractive Method = "abstractive"
	MethodExtractive  Method = "extractive"
	MethodFallback    Method = "fallback"
)

// Summary is one produced section summary together with its provenance,
// so a degraded (fallback) outcome stays inspectable instead of silent.
type Summary struct {
	Text   string
	Method Method
}

// Result is the pipeline's output contract: the cleaned text of each
// canonical section, and a summary for every section that had non-empty
// text. Sections always contains every canonical key; Summaries only the
// non-empty ones. Both maps are handed to callers by value and no state
// is retained between documents.
type Result struct {
	Sections  map[Section]string
	Summaries map[Section]Summary
}
