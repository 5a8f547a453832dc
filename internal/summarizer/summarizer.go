package summarizer

import (
	"context"

	"paperdeck/internal/domain"
)

// Input describes the payload for a summary request.
type Input struct {
	// Text contains the cleaned section text to summarise.
	Text string
	// Section names the canonical section the text belongs to, so a
	// summarizer can adjust its register (a Methods summary should stay
	// closer to the source than an Introduction summary).
	Section domain.Section
}

// Summarizer produces a single summary for a given input text.
type Summarizer interface {
	Summarize(ctx context.Context, input Input) (string, error)
}
