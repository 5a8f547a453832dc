// Package pipeline converts raw extracted document text into per-section
// summaries: clean, segment into canonical sections, then summarize each
// non-empty section through its configured strategy.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"paperdeck/internal/domain"
	"paperdeck/internal/summarizer"
)

// ErrNoContent is returned when cleaning and segmentation produce no
// usable text at all. Callers must treat it as terminal for the
// document; every lesser failure degrades section-locally instead.
var ErrNoContent = errors.New("document has no extractable content")

// Pipeline runs the document-to-summary conversion. One document is
// processed start to finish by one Run call with no internal
// parallelism; the only shared state is the summarizer set, which is
// read-only during a run.
type Pipeline struct {
	summarizers *summarizer.Set
	log         *slog.Logger
}

func New(summarizers *summarizer.Set, log *slog.Logger) *Pipeline {
	return &Pipeline{
		summarizers: summarizers,
		log:         log,
	}
}

// Run cleans raw text, segments it into canonical sections and
// summarizes them. The returned result is built fresh per call and
// handed to the caller by value; nothing about the document is
// retained. A document that yields no sentences returns (nil,
// ErrNoContent).
func (p *Pipeline) Run(ctx context.Context, raw string) (*domain.Result, error) {
	cleaned := Clean(raw)
	if cleaned == "" {
		return nil, ErrNoContent
	}

	sections := Segment(cleaned)

	populated := 0
	for _, text := range sections {
		if strings.TrimSpace(text) != "" {
			populated++
		}
	}
	if populated == 0 {
		return nil, ErrNoContent
	}

	summaries := p.summarizers.SummarizeSections(ctx, sections)

	p.log.InfoContext(ctx, "Document summarized",
		"cleanedLen", len(cleaned),
		"populatedSections", populated,
		"summaryCount", len(summaries))

	return &domain.Result{
		Sections:  sections,
		Summaries: summaries,
	}, nil
}
