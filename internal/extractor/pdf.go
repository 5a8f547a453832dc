package extractor

import (
	"bytes"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// extractPDF pulls plain text out of a PDF. When the reader cannot make
// sense of the file it salvages whatever printable text the bytes
// contain instead of failing; a degraded extraction is still more
// useful than none, and the pipeline rejects truly empty results.
func extractPDF(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	if text := readPlainText(data); text != "" {
		return text
	}

	return salvagePrintable(data)
}

// readPlainText isolates the PDF reader, which panics on some malformed
// files instead of returning an error.
func readPlainText(data []byte) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	if r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data))); err == nil {
		if reader, err := r.GetPlainText(); err == nil {
			if out, err := io.ReadAll(reader); err == nil {
				text = string(out)
			}
		}
	}

	return text
}

func salvagePrintable(in []byte) string {
	var out bytes.Buffer
	for len(in) > 0 {
		r, size := utf8.DecodeRune(in)
		if r == utf8.RuneError && size == 1 {
			b := in[0]
			if b == '\n' || b == '\t' || (b >= 0x20 && b < 0x7f) {
				out.WriteByte(b)
			} else {
				out.WriteByte(' ')
			}
			in = in[1:]
			continue
		}

		if r == '\n' || r == '\t' || unicode.IsPrint(r) {
			out.WriteRune(r)
		} else {
			out.WriteRune(' ')
		}
		in = in[size:]
	}

	return out.String()
}
