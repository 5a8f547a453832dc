package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"paperdeck/internal/extractor"
	"paperdeck/internal/pipeline"
	"paperdeck/internal/renderer"
	"paperdeck/internal/summarizer"
)

type stubSummarizer struct{}

func (stubSummarizer) Summarize(
	_ context.Context,
	input summarizer.Input,
) (string, error) {
	return "summary of " + string(input.Section), nil
}

// stubFFmpeg stands in for the real binary and writes fake clip bytes
// to the output path.
type stubFFmpeg struct{}

func (stubFFmpeg) Execute(_ context.Context, _ string, args ...string) (string, error) {
	return "", os.WriteFile(args[len(args)-1], []byte("fake mp4 bytes"), 0o600)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	log := slog.Default()
	set := summarizer.NewSet(stubSummarizer{}, summarizer.NewExtractive(3), log)

	return New(
		pipeline.New(set, log),
		extractor.New(log),
		Renderers{
			Deck:     renderer.NewDeck(log),
			Audio:    renderer.NewAudio("", "", log),
			Video:    renderer.NewVideo(stubFFmpeg{}, log),
			Abstract: renderer.NewAbstract(log),
		},
		1<<20,
		log,
	)
}

func uploadRequest(t *testing.T, filename, content, format string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile(uploadFieldName, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err = io.WriteString(fw, content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if format != "" {
		if err = mw.WriteField("format", format); err != nil {
			t.Fatalf("write format field: %v", err)
		}
	}
	if err = mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/papers", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return req
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestIndexServesUploadForm(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `name="paper"`) {
		t.Fatalf("upload form is missing the file field")
	}
}

func TestUploadReturnsDeck(t *testing.T) {
	srv := newTestServer(t)

	req := uploadRequest(t, "paper.txt",
		"Introduction: ML is useful. Methods: We used X. Results: It worked.", "")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d, body %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("unexpected content type: %q", got)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Fatalf("response is not a PDF")
	}
}

func TestUploadEmptyDocument(t *testing.T) {
	srv := newTestServer(t)

	req := uploadRequest(t, "paper.txt", "   ", "")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status: %d, body %s", rec.Code, rec.Body.String())
	}

	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	if payload["error"] == "" {
		t.Fatalf("expected a human-readable error, got %#v", payload)
	}
}

func TestUploadUnsupportedFormat(t *testing.T) {
	srv := newTestServer(t)

	req := uploadRequest(t, "paper.docx", "irrelevant", "")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestUploadMissingFile(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/papers", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=none")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestUploadAudioWithoutCredentials(t *testing.T) {
	srv := newTestServer(t)

	req := uploadRequest(t, "paper.txt",
		"Introduction: ML is useful. Methods: We used X.", "audio")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status: %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestUploadReturnsVideo(t *testing.T) {
	srv := newTestServer(t)

	req := uploadRequest(t, "paper.txt",
		"Introduction: ML is useful. Methods: We used X.", "video")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d, body %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "video/mp4" {
		t.Fatalf("unexpected content type: %q", got)
	}
	if rec.Body.String() != "fake mp4 bytes" {
		t.Fatalf("response is not the encoded clip: %q", rec.Body.String())
	}
}

func TestUploadReturnsGraphicalAbstract(t *testing.T) {
	srv := newTestServer(t)

	req := uploadRequest(t, "paper.txt",
		"Introduction: Neural networks predict weather. Neural networks learn patterns.", "abstract")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d, body %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "image/svg+xml" {
		t.Fatalf("unexpected content type: %q", got)
	}
	if !strings.HasPrefix(rec.Body.String(), "<svg") {
		t.Fatalf("response is not an SVG document")
	}
}

func TestUploadUnknownRenderFormat(t *testing.T) {
	srv := newTestServer(t)

	req := uploadRequest(t, "paper.txt", "Introduction: ML is useful.", "pptx")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}
