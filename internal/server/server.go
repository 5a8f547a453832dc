// Package server exposes the pipeline over a minimal HTTP upload
// surface: one form, one processing endpoint, one health check.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"paperdeck/internal/domain"
	"paperdeck/internal/extractor"
	"paperdeck/internal/pipeline"
	"paperdeck/internal/renderer"
)

const uploadFieldName = "paper"

// Renderers bundles the output surfaces a summary can be downloaded as.
type Renderers struct {
	Deck     *renderer.Deck
	Audio    *renderer.Audio
	Video    *renderer.Video
	Abstract *renderer.Abstract
}

type Server struct {
	router    chi.Router
	pipeline  *pipeline.Pipeline
	extractor *extractor.Extractor
	renderers Renderers
	maxUpload int64
	log       *slog.Logger
}

func New(
	p *pipeline.Pipeline,
	e *extractor.Extractor,
	renderers Renderers,
	maxUpload int64,
	log *slog.Logger,
) *Server {
	s := &Server{
		pipeline:  p,
		extractor: e,
		renderers: renderers,
		maxUpload: maxUpload,
		log:       log,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealthz)
	r.Post("/papers", s.handleUpload)

	s.router = r

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, indexHTML)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, `{"status":"ok"}`)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	file, header, err := r.FormFile(uploadFieldName)
	if err != nil {
		s.writeError(w, http.StatusBadRequest,
			fmt.Sprintf("missing %q upload", uploadFieldName))

		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			s.log.WarnContext(ctx, "Failed to close upload",
				"error", closeErr)
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "upload could not be read")

		return
	}

	raw, err := s.extractor.Extract(header.Filename, data)
	if err != nil {
		s.log.WarnContext(ctx, "Extraction rejected upload",
			"error", err,
			"filename", header.Filename,
			"sizeBytes", len(data))
		s.writeError(w, http.StatusBadRequest, err.Error())

		return
	}

	result, err := s.pipeline.Run(ctx, raw)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoContent) {
			s.writeError(w, http.StatusUnprocessableEntity,
				"no usable text could be extracted from the document")

			return
		}

		s.log.ErrorContext(ctx, "Pipeline failed",
			"error", err,
			"filename", header.Filename)
		s.writeError(w, http.StatusInternalServerError, "processing failed")

		return
	}

	switch format := strings.TrimSpace(r.FormValue("format")); format {
	case "", "deck":
		s.respondDeck(ctx, w, result)
	case "audio":
		s.respondAudio(ctx, w, result)
	case "video":
		s.respondVideo(ctx, w, result)
	case "abstract":
		s.respondAbstract(ctx, w, result)
	default:
		s.writeError(w, http.StatusBadRequest,
			fmt.Sprintf("unknown format %q", format))
	}
}

func (s *Server) respondDeck(
	ctx context.Context,
	w http.ResponseWriter,
	result *domain.Result,
) {
	deck, err := s.renderers.Deck.Render(result)
	if err != nil {
		s.log.ErrorContext(ctx, "Deck rendering failed",
			"error", err)
		s.writeError(w, http.StatusInternalServerError, "deck rendering failed")

		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="summary-deck.pdf"`)
	_, _ = w.Write(deck)
}

func (s *Server) respondAudio(
	ctx context.Context,
	w http.ResponseWriter,
	result *domain.Result,
) {
	audio, err := s.renderers.Audio.Render(ctx, result)
	if err != nil {
		if errors.Is(err, renderer.ErrAudioDisabled) {
			s.writeError(w, http.StatusServiceUnavailable, "audio rendering is not configured")

			return
		}

		s.log.ErrorContext(ctx, "Audio rendering failed",
			"error", err)
		s.writeError(w, http.StatusBadGateway, "audio rendering failed")

		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Disposition", `attachment; filename="summary.mp3"`)
	_, _ = w.Write(audio)
}

func (s *Server) respondVideo(
	ctx context.Context,
	w http.ResponseWriter,
	result *domain.Result,
) {
	video, err := s.renderers.Video.Render(ctx, result)
	if err != nil {
		s.log.ErrorContext(ctx, "Video rendering failed",
			"error", err)
		s.writeError(w, http.StatusInternalServerError, "video rendering failed")

		return
	}

	w.Header().Set("Content-Type", "video/mp4")
	w.Header().Set("Content-Disposition", `attachment; filename="summary.mp4"`)
	_, _ = w.Write(video)
}

func (s *Server) respondAbstract(
	ctx context.Context,
	w http.ResponseWriter,
	result *domain.Result,
) {
	svg, err := s.renderers.Abstract.Render(result)
	if err != nil {
		s.log.ErrorContext(ctx, "Graphical abstract rendering failed",
			"error", err)
		s.writeError(w, http.StatusInternalServerError, "graphical abstract rendering failed")

		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Content-Disposition", `attachment; filename="graphical-abstract.svg"`)
	_, _ = w.Write(svg)
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
