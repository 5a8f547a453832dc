package summarizer

import "paperdeck/internal/domain"

// Capability identifies which summarization strategy handles a section.
type Capability int

const (
	CapabilityFallback Capability = iota
	CapabilityExtractive
	CapabilityAbstractive
)

func (c Capability) String() string {
	switch c {
	case CapabilityExtractive:
		return "extractive"
	case CapabilityAbstractive:
		return "abstractive"
	default:
		return "fallback"
	}
}

// sectionCapabilities is the static strategy table. Methods and Results
// carry the factual load of a paper, so they get faithful extraction;
// the narrative sections read better as generated prose; the title is
// short enough that plain truncation is the right tool. The binding is
// fixed per process, not per document.
var sectionCapabilities = map[domain.Section]Capability{
	domain.SectionTitle:        CapabilityFallback,
	domain.SectionAbstract:     CapabilityAbstractive,
	domain.SectionIntroduction: CapabilityAbstractive,
	domain.SectionMethods:      CapabilityExtractive,
	domain.SectionResults:      CapabilityExtractive,
	domain.SectionDiscussion:   CapabilityAbstractive,
	domain.SectionConclusion:   CapabilityAbstractive,
}

// CapabilityFor resolves the strategy for a section. Sections outside
// the canonical enumeration cannot normally occur, but an unknown
// section still resolves safely to the fallback strategy.
func CapabilityFor(section domain.Section) Capability {
	capability, ok := sectionCapabilities[section]
	if !ok {
		return CapabilityFallback
	}

	return capability
}
