package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
)

const (
	baseMaxOutputTokens  int64 = 256
	limitMaxOutputTokens int64 = 1024

	// Oversized sections are truncated to this many runes before
	// generation, never rejected. Roughly the context the summary
	// quality stops improving at for a single section.
	maxInputRunes = 6000

	systemPrompt = `Summarize one section of a research paper.

Rules:
- 3 to 5 sentences, plain prose, no lists and no headings.
- Keep the key claims, numbers, and named methods or datasets.
- Do not add information that is not in the section text.
- Match the register of the section named in the request (a Methods
  section summary stays factual; narrative sections may generalize).
- Output in the same language as the input.`
)

// OpenAISummarizer produces abstractive summaries via OpenAI's Responses
// API. The client is constructed once per process and is safe for reuse
// across sequential pipeline invocations.
type OpenAISummarizer struct {
	client openai.Client
}

// NewOpenAISummarizer builds a new abstractive summarizer instance.
func NewOpenAISummarizer(apiKey string) (*OpenAISummarizer, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("api key is empty")
	}

	return &OpenAISummarizer{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
	}, nil
}

// Summarize generates a bounded-length summary of one section. Errors
// are returned to the caller, which is expected to degrade to the
// fallback summarizer rather than propagate them further.
func (s *OpenAISummarizer) Summarize(
	ctx context.Context,
	input Input,
) (string, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return "", errors.New("input is empty")
	}

	if runes := []rune(text); len(runes) > maxInputRunes {
		text = string(runes[:maxInputRunes])
	}

	userPromptBuilder := strings.Builder{}
	if section := strings.TrimSpace(string(input.Section)); section != "" {
		userPromptBuilder.WriteString("Section:\n")
		userPromptBuilder.WriteString(section)
		userPromptBuilder.WriteString("\n")
	}
	userPromptBuilder.WriteString("Content:\n")
	userPromptBuilder.WriteString(text)

	maxOutputTokens := baseMaxOutputTokens
	for {
		resp, err := s.client.Responses.New(ctx, responses.ResponseNewParams{
			Model:           openai.ChatModelGPT5Mini2025_08_07,
			ServiceTier:     responses.ResponseNewParamsServiceTierFlex,
			MaxOutputTokens: openai.Int(maxOutputTokens),
			Reasoning: responses.ReasoningParam{
				Effort: openai.ReasoningEffortLow,
			},
			Instructions: openai.String(systemPrompt),
			Input: responses.ResponseNewParamsInputUnion{
				OfString: openai.String(userPromptBuilder.String()),
			},
		})
		if err != nil {
			return "", fmt.Errorf("do request: %w", err)
		}

		if resp.Status == "incomplete" {
			if resp.IncompleteDetails.Reason == "max_output_tokens" && maxOutputTokens < limitMaxOutputTokens {
				maxOutputTokens *= 2
				if maxOutputTokens > limitMaxOutputTokens {
					maxOutputTokens = limitMaxOutputTokens
				}
				continue
			}
			return "", fmt.Errorf(
				"response is incomplete (reason = %s, maxOutputTokens = %d)",
				resp.IncompleteDetails.Reason,
				maxOutputTokens,
			)
		}

		summary := strings.TrimSpace(resp.OutputText())
		if summary == "" {
			return "", fmt.Errorf("output text is missing (status = %s)", resp.Status)
		}
		return summary, nil
	}
}
