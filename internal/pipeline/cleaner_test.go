package pipeline

import (
	"strings"
	"testing"
)

func TestCleanRemovesCitationsAndFigureRefs(t *testing.T) {
	got := Clean("Fig 3 shows [12] results (Smith 2020).")

	if got != "shows results ." {
		t.Fatalf("unexpected cleaned text: %q", got)
	}
}

func TestCleanRemovesJournalMetadata(t *testing.T) {
	inputs := []string{
		"ISSN: 1234-5678 The study begins here.",
		"Impact Factor: 3.2 The study begins here.",
		"Volume 12, Issue 4 The study begins here.",
		"ISO 9001 The study begins here.",
	}

	for _, input := range inputs {
		got := Clean(input)
		if got != "The study begins here." {
			t.Fatalf("Clean(%q) = %q", input, got)
		}
	}
}

func TestCleanRemovesURLs(t *testing.T) {
	got := Clean("Code is available at https://example.com/repo for review.")

	if strings.Contains(got, "example.com") {
		t.Fatalf("URL survived cleaning: %q", got)
	}
	if !strings.Contains(got, "Code is available at") {
		t.Fatalf("surrounding text was lost: %q", got)
	}
}

func TestCleanStripsDisallowedCharacters(t *testing.T) {
	got := Clean("Results* were 95% positive — mostly.")

	for _, forbidden := range []string{"*", "%", "—"} {
		if strings.Contains(got, forbidden) {
			t.Fatalf("character %q survived cleaning: %q", forbidden, got)
		}
	}
}

func TestCleanCollapsesWhitespace(t *testing.T) {
	got := Clean("  spaced \t out \n\n text  ")

	if got != "spaced out text" {
		t.Fatalf("unexpected cleaned text: %q", got)
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	inputs := []string{
		"Fig 3 shows [12] results (Smith 2020).",
		"A plain sentence without anything to remove.",
		"Fig® 3 shows results.",
		"Nested ((Smith 2020)) citation.",
		"ISSN: 1234-5678 Volume 3, Issue 1 text [1-4] here.",
		"",
		"   \t  ",
	}

	for _, input := range inputs {
		once := Clean(input)
		twice := Clean(once)

		if once != twice {
			t.Fatalf("Clean is not idempotent for %q: %q vs %q", input, once, twice)
		}
	}
}

func TestCleanNeverFails(t *testing.T) {
	// Malformed input degrades to an over-cleaned string, never panics.
	got := Clean("\x00\x01[[[((( ]]] �")

	if strings.ContainsRune(got, '\x00') {
		t.Fatalf("control character survived: %q", got)
	}
}
