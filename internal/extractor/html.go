package extractor

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// extractHTML extracts the visible text of an HTML document. Script,
// style and head content is dropped first so only rendered prose
// reaches the pipeline.
func extractHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find("script, style, noscript, head").Remove()

	body := doc.Find("body")
	if body.Length() > 0 {
		return body.Text(), nil
	}

	return doc.Text(), nil
}
