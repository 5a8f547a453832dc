// Package extractor turns uploaded document bytes into a single raw
// text string for the pipeline. It hands over page-concatenated text
// only: no layout, fonts, or page boundaries survive extraction, and
// real cleaning is the pipeline's job.
package extractor

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode"
)

// Format is a supported upload format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
	FormatTXT  Format = "txt"
)

type Extractor struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Extractor {
	return &Extractor{log: log}
}

// Detect returns the document format based on file extension.
func Detect(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return FormatPDF, nil
	case ".html", ".htm":
		return FormatHTML, nil
	case ".txt", ".text":
		return FormatTXT, nil
	default:
		return "", fmt.Errorf("unsupported format: %q", ext)
	}
}

// Extract parses the uploaded bytes and returns whitespace-normalized
// raw text. An empty result is not an error here; the pipeline decides
// whether the document is unusable.
func (e *Extractor) Extract(filename string, data []byte) (string, error) {
	format, err := Detect(filename)
	if err != nil {
		return "", err
	}

	var text string
	switch format {
	case FormatPDF:
		text = extractPDF(data)
	case FormatHTML:
		text, err = extractHTML(data)
	case FormatTXT:
		text = string(data)
	}
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", format, err)
	}

	text = normalizeWhitespace(text)

	e.log.Debug("Document extracted",
		"filename", filename,
		"format", string(format),
		"inputBytes", len(data),
		"textLen", len(text))

	return text, nil
}

func normalizeWhitespace(text string) string {
	var sb strings.Builder
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !prevSpace && sb.Len() > 0 {
				sb.WriteByte(' ')
				prevSpace = true
			}
		} else {
			sb.WriteRune(r)
			prevSpace = false
		}
	}

	return strings.TrimSpace(sb.String())
}
