package renderer

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"paperdeck/internal/domain"
	"paperdeck/internal/summarizer"
)

const (
	abstractWidth  = 800
	abstractHeight = 600

	abstractConcepts   = 5
	abstractNodeRadius = 30
	abstractLayoutRX   = 260.0
	abstractLayoutRY   = 180.0
)

// Abstract renders a one-page SVG concept graph of the paper: the most
// frequent content terms across all section summaries, laid out on an
// ellipse and fully connected.
type Abstract struct {
	log *slog.Logger
}

func NewAbstract(log *slog.Logger) *Abstract {
	return &Abstract{log: log}
}

// Render returns the graph as SVG bytes. Concepts come from the summary
// texts, not the raw sections, so the graph reflects what the reader is
// actually shown.
func (a *Abstract) Render(result *domain.Result) ([]byte, error) {
	var sb strings.Builder
	for _, section := range domain.SectionOrder {
		summary, ok := result.Summaries[section]
		if !ok {
			continue
		}
		sb.WriteString(summary.Text)
		sb.WriteString(" ")
	}

	concepts := summarizer.KeyTerms(sb.String(), abstractConcepts)
	if len(concepts) == 0 {
		return nil, errors.New("no concepts to render")
	}

	svg := conceptGraphSVG(concepts, abstractTitle(result))

	a.log.Debug("Graphical abstract rendered",
		"concepts", len(concepts),
		"bytes", len(svg))

	return []byte(svg), nil
}

func abstractTitle(result *domain.Result) string {
	title := strings.TrimSpace(result.Sections[domain.SectionTitle])
	if title == "" {
		return deckTitleFallback
	}

	return title
}

// conceptGraphSVG draws nodes on an ellipse around the canvas center,
// every pair connected. Term tokens contain letters and spaces only, so
// labels need no XML escaping; the title is escaped.
func conceptGraphSVG(concepts []string, title string) string {
	cx := float64(abstractWidth) / 2
	cy := float64(abstractHeight)/2 + 20

	type point struct{ x, y float64 }
	points := make([]point, len(concepts))
	for i := range concepts {
		angle := 2 * math.Pi * float64(i) / float64(len(concepts))
		points[i] = point{
			x: cx + abstractLayoutRX*math.Cos(angle-math.Pi/2),
			y: cy + abstractLayoutRY*math.Sin(angle-math.Pi/2),
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		abstractWidth, abstractHeight, abstractWidth, abstractHeight)
	sb.WriteString(`<defs><linearGradient id="bg" x1="0%" y1="0%" x2="100%" y2="100%">` +
		`<stop offset="0%" stop-color="#1a1a2e"/>` +
		`<stop offset="100%" stop-color="#16213e"/>` +
		`</linearGradient></defs>`)
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="url(#bg)"/>`,
		abstractWidth, abstractHeight)

	fmt.Fprintf(&sb,
		`<text x="%g" y="40" fill="#ffffff" font-family="Arial" font-size="20" text-anchor="middle">%s</text>`,
		cx, xmlEscape(title))

	for i := range points {
		for j := i + 1; j < len(points); j++ {
			fmt.Fprintf(&sb,
				`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#4a90e2" stroke-opacity="0.4" stroke-width="2"/>`,
				points[i].x, points[i].y, points[j].x, points[j].y)
		}
	}

	for i, concept := range concepts {
		fmt.Fprintf(&sb,
			`<circle cx="%.1f" cy="%.1f" r="%d" fill="#4a90e2" stroke="#ffffff" stroke-width="2"/>`,
			points[i].x, points[i].y, abstractNodeRadius)
		fmt.Fprintf(&sb,
			`<text x="%.1f" y="%.1f" fill="#ffffff" font-family="Arial" font-size="14" text-anchor="middle">%s</text>`,
			points[i].x, points[i].y+abstractNodeRadius+18, concept)
	}

	sb.WriteString(`</svg>`)

	return sb.String()
}

func xmlEscape(s string) string {
	return strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	).Replace(s)
}
