package summarizer

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"paperdeck/internal/domain"
)

// After this many consecutive abstractive failures the abstractive slot
// is cleared and every narrative section degrades to fallback until the
// slot is reinstated.
const abstractiveDisableThreshold = 3

// Set binds the three summarization capabilities and dispatches each
// section to the one its capability table entry names. A section whose
// configured summarizer errors is retried through Fallback rather than
// omitted, so no per-section failure ever aborts a document.
//
// The abstractive slot may be nil (no API key, failed initialization,
// or disabled after repeated failures); Reinstate re-arms it without a
// process restart.
type Set struct {
	extractive *Extractive
	log        *slog.Logger

	mu                  sync.RWMutex
	abstractive         Summarizer
	abstractiveFailures int
}

// NewSet creates a Set. abstractive may be nil, in which case sections
// configured for abstractive summarization use the fallback summarizer.
func NewSet(abstractive Summarizer, extractive *Extractive, log *slog.Logger) *Set {
	return &Set{
		extractive:  extractive,
		abstractive: abstractive,
		log:         log,
	}
}

// AbstractiveAvailable reports whether generated summaries are currently
// possible.
func (s *Set) AbstractiveAvailable() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.abstractive != nil
}

// Reinstate installs a fresh abstractive summarizer and clears the
// failure counter.
func (s *Set) Reinstate(abstractive Summarizer) {
	if abstractive == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.abstractive = abstractive
	s.abstractiveFailures = 0
}

// SummarizeSections summarizes every canonical section with non-empty
// text, in enumeration order. Whitespace-only sections are skipped
// entirely and get no summary entry.
func (s *Set) SummarizeSections(
	ctx context.Context,
	sections map[domain.Section]string,
) map[domain.Section]domain.Summary {
	out := make(map[domain.Section]domain.Summary, len(sections))

	for _, section := range domain.SectionOrder {
		text, ok := sections[section]
		if !ok || strings.TrimSpace(text) == "" {
			continue
		}

		out[section] = s.summarizeSection(ctx, section, text)
	}

	return out
}

func (s *Set) summarizeSection(
	ctx context.Context,
	section domain.Section,
	text string,
) domain.Summary {
	switch CapabilityFor(section) {
	case CapabilityAbstractive:
		if summary, ok := s.abstractiveSummary(ctx, section, text); ok {
			return domain.Summary{Text: summary, Method: domain.MethodAbstractive}
		}

	case CapabilityExtractive:
		summary, err := s.extractive.Summarize(ctx, Input{Text: text, Section: section})
		if err == nil && strings.TrimSpace(summary) != "" {
			return domain.Summary{Text: summary, Method: domain.MethodExtractive}
		}
		if err != nil {
			s.log.ErrorContext(ctx, "Failed to summarize section extractively",
				"error", err,
				"section", section,
				"fallback", true,
				"textLen", len(text))
		}
	}

	return domain.Summary{Text: Fallback(text), Method: domain.MethodFallback}
}

func (s *Set) abstractiveSummary(
	ctx context.Context,
	section domain.Section,
	text string,
) (string, bool) {
	s.mu.RLock()
	abstractive := s.abstractive
	s.mu.RUnlock()

	if abstractive == nil {
		return "", false
	}

	summary, err := abstractive.Summarize(ctx, Input{Text: text, Section: section})
	if err != nil {
		s.recordAbstractiveFailure(ctx, section, err, len(text))

		return "", false
	}

	summary = strings.TrimSpace(summary)
	if summary == "" {
		s.log.WarnContext(ctx, "Abstractive summary is empty",
			"section", section,
			"fallback", true,
			"textLen", len(text))

		return "", false
	}

	s.mu.Lock()
	s.abstractiveFailures = 0
	s.mu.Unlock()

	return summary, true
}

func (s *Set) recordAbstractiveFailure(
	ctx context.Context,
	section domain.Section,
	err error,
	textLen int,
) {
	s.mu.Lock()
	s.abstractiveFailures++
	disabled := false
	if s.abstractiveFailures >= abstractiveDisableThreshold && s.abstractive != nil {
		s.abstractive = nil
		disabled = true
	}
	failures := s.abstractiveFailures
	s.mu.Unlock()

	s.log.ErrorContext(ctx, "Failed to summarize section abstractively",
		"error", err,
		"section", section,
		"fallback", true,
		"consecutiveFailures", failures,
		"abstractiveDisabled", disabled,
		"textLen", textLen)
}
