// Package renderer turns a pipeline result into downloadable artifacts.
// Renderers consume the result maps by value and assume nothing about
// which sections are present beyond Title.
package renderer

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-pdf/fpdf"

	"paperdeck/internal/domain"
)

const (
	deckTitleFallback = "Research Paper Summary"
	deckTitleMaxRunes = 120
)

// Deck renders one landscape PDF slide per summarized section, in
// canonical section order.
type Deck struct {
	log *slog.Logger
}

func NewDeck(log *slog.Logger) *Deck {
	return &Deck{log: log}
}

// Render produces the deck as PDF bytes. Sections without a summary get
// no slide; a result with no summaries at all still yields the cover
// page.
func (d *Deck) Render(result *domain.Result) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 30)
	pdf.MultiCell(0, 14, tr(deckTitle(result)), "", "C", false)

	slides := 0
	for _, section := range domain.SectionOrder {
		summary, ok := result.Summaries[section]
		if !ok || strings.TrimSpace(summary.Text) == "" {
			continue
		}
		if section == domain.SectionTitle {
			// Already on the cover page.
			continue
		}

		pdf.AddPage()
		pdf.SetFont("Arial", "B", 24)
		pdf.CellFormat(0, 14, tr(string(section)), "", 1, "L", false, 0, "")
		pdf.Ln(4)
		pdf.SetFont("Arial", "", 13)
		pdf.MultiCell(0, 8, tr(summary.Text), "", "L", false)
		slides++
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write deck: %w", err)
	}

	d.log.Debug("Deck rendered",
		"slides", slides,
		"bytes", buf.Len())

	return buf.Bytes(), nil
}

func deckTitle(result *domain.Result) string {
	title := strings.TrimSpace(result.Sections[domain.SectionTitle])
	if title == "" {
		return deckTitleFallback
	}

	runes := []rune(title)
	if len(runes) > deckTitleMaxRunes {
		title = strings.TrimSpace(string(runes[:deckTitleMaxRunes])) + "..."
	}

	return title
}
