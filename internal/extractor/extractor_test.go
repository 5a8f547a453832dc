package extractor

import (
	"log/slog"
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		filename string
		want     Format
	}{
		{"paper.pdf", FormatPDF},
		{"paper.PDF", FormatPDF},
		{"paper.html", FormatHTML},
		{"paper.htm", FormatHTML},
		{"paper.txt", FormatTXT},
	}

	for _, tc := range cases {
		got, err := Detect(tc.filename)
		if err != nil {
			t.Fatalf("Detect(%q): unexpected error: %v", tc.filename, err)
		}
		if got != tc.want {
			t.Fatalf("Detect(%q) = %q, want %q", tc.filename, got, tc.want)
		}
	}
}

func TestDetectUnsupported(t *testing.T) {
	for _, filename := range []string{"paper.docx", "paper", "paper.exe"} {
		if _, err := Detect(filename); err == nil {
			t.Fatalf("Detect(%q): expected error", filename)
		}
	}
}

func TestExtractPlainText(t *testing.T) {
	e := New(slog.Default())

	got, err := e.Extract("paper.txt", []byte("  some \n\n raw \t text  "))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != "some raw text" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestExtractHTML(t *testing.T) {
	e := New(slog.Default())

	html := `<html><head><title>ignored</title><style>p{color:red}</style></head>` +
		`<body><script>var x = 1;</script><h1>Paper Title</h1>` +
		`<p>Abstract goes here.</p></body></html>`

	got, err := e.Extract("paper.html", []byte(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, "Paper Title") || !strings.Contains(got, "Abstract goes here.") {
		t.Fatalf("visible text is missing: %q", got)
	}
	if strings.Contains(got, "var x") || strings.Contains(got, "color:red") || strings.Contains(got, "ignored") {
		t.Fatalf("non-visible content leaked: %q", got)
	}
}

func TestExtractPDFSalvagesPrintableText(t *testing.T) {
	e := New(slog.Default())

	// Not a real PDF; the reader fails and the printable-byte salvage
	// path takes over.
	data := append([]byte{0x00, 0x01}, []byte("salvaged words")...)

	got, err := e.Extract("paper.pdf", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, "salvaged words") {
		t.Fatalf("printable text was not salvaged: %q", got)
	}
}

func TestExtractUnsupportedFormat(t *testing.T) {
	e := New(slog.Default())

	if _, err := e.Extract("paper.docx", []byte("irrelevant")); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
