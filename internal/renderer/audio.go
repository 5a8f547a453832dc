package renderer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"paperdeck/internal/domain"
)

const (
	elevenLabsBaseURL = "https://api.elevenlabs.io"
	elevenLabsModelID = "eleven_multilingual_v2"

	audioRequestTimeout = 2 * time.Minute
	narrationMaxRunes   = 9000
)

// ErrAudioDisabled is returned when no text-to-speech API key is
// configured.
var ErrAudioDisabled = errors.New("audio rendering is not configured")

// Audio narrates the section summaries through the ElevenLabs
// text-to-speech REST API and returns MP3 bytes.
type Audio struct {
	apiKey  string
	voiceID string
	baseURL string
	client  *http.Client
	log     *slog.Logger
}

func NewAudio(apiKey string, voiceID string, log *slog.Logger) *Audio {
	return &Audio{
		apiKey:  strings.TrimSpace(apiKey),
		voiceID: strings.TrimSpace(voiceID),
		baseURL: elevenLabsBaseURL,
		client:  &http.Client{Timeout: audioRequestTimeout},
		log:     log,
	}
}

// Enabled reports whether narration can be produced at all.
func (a *Audio) Enabled() bool {
	return a.apiKey != "" && a.voiceID != ""
}

// Render builds a narration script from the summaries in canonical
// section order and synthesizes it. The script is bounded so one paper
// cannot produce an arbitrarily long synthesis request.
func (a *Audio) Render(ctx context.Context, result *domain.Result) ([]byte, error) {
	if !a.Enabled() {
		return nil, ErrAudioDisabled
	}

	script := narrationScript(result)
	if script == "" {
		return nil, errors.New("nothing to narrate")
	}

	payload, err := json.Marshal(map[string]string{
		"text":     script,
		"model_id": elevenLabsModelID,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s", a.baseURL, a.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			a.log.WarnContext(ctx, "Failed to close response body",
				"error", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))

		return nil, fmt.Errorf("text-to-speech failed: status %d: %s", resp.StatusCode, body)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, errors.New("empty audio response")
	}

	a.log.Debug("Narration rendered",
		"scriptLen", len(script),
		"audioBytes", len(audio))

	return audio, nil
}

func narrationScript(result *domain.Result) string {
	var sb strings.Builder

	for _, section := range domain.SectionOrder {
		summary, ok := result.Summaries[section]
		if !ok || strings.TrimSpace(summary.Text) == "" {
			continue
		}

		if section != domain.SectionTitle {
			sb.WriteString(string(section))
			sb.WriteString(". ")
		}
		sb.WriteString(strings.TrimSpace(summary.Text))
		sb.WriteString(" ")
	}

	script := strings.TrimSpace(sb.String())
	runes := []rune(script)
	if len(runes) > narrationMaxRunes {
		script = strings.TrimSpace(string(runes[:narrationMaxRunes]))
	}

	return script
}
