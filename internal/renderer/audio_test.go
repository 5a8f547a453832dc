package renderer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"paperdeck/internal/domain"
)

func TestAudioDisabledWithoutCredentials(t *testing.T) {
	audio := NewAudio("", "", slog.Default())

	if audio.Enabled() {
		t.Fatalf("expected audio to be disabled without credentials")
	}

	if _, err := audio.Render(context.Background(), testResult()); !errors.Is(err, ErrAudioDisabled) {
		t.Fatalf("expected ErrAudioDisabled, got %v", err)
	}
}

func TestAudioRenderPostsNarrationScript(t *testing.T) {
	var gotPath, gotKey, gotBody string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("xi-api-key")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		_, _ = w.Write([]byte("mp3-bytes"))
	}))
	defer ts.Close()

	audio := NewAudio("test-key", "voice-1", slog.Default())
	audio.baseURL = ts.URL

	out, err := audio.Render(context.Background(), testResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(out) != "mp3-bytes" {
		t.Fatalf("unexpected audio bytes: %q", out)
	}
	if gotPath != "/v1/text-to-speech/voice-1" {
		t.Fatalf("unexpected request path: %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Fatalf("unexpected api key header: %q", gotKey)
	}
	if !strings.Contains(gotBody, "Intro summary.") || !strings.Contains(gotBody, "Introduction.") {
		t.Fatalf("narration script is missing content: %q", gotBody)
	}
}

func TestAudioRenderSurfacesAPIFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad voice", http.StatusUnauthorized)
	}))
	defer ts.Close()

	audio := NewAudio("test-key", "voice-1", slog.Default())
	audio.baseURL = ts.URL

	if _, err := audio.Render(context.Background(), testResult()); err == nil {
		t.Fatalf("expected error on non-200 response")
	}
}

func TestNarrationScriptFollowsSectionOrder(t *testing.T) {
	result := &domain.Result{
		Summaries: map[domain.Section]domain.Summary{
			domain.SectionConclusion:   {Text: "Last."},
			domain.SectionIntroduction: {Text: "First."},
		},
	}

	script := narrationScript(result)

	intro := strings.Index(script, "First.")
	conclusion := strings.Index(script, "Last.")
	if intro < 0 || conclusion < 0 || intro > conclusion {
		t.Fatalf("narration out of order: %q", script)
	}
}
