package slug_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"mindmate/internal/platform/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"  Evening Check-in  ": "evening-check-in",
		"Медитация для сна":    "медитация-для-сна",
		"!!!":                  "untitled",
		"Session #2: sleep":    "session-2-sleep",
	}
	for input, want := range cases {
		if got := slug.Make(input); got != want {
			t.Fatalf("Make(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestMakeCutsLongTitlesAtWordBoundary(t *testing.T) {
	t.Parallel()
	title := strings.Repeat("тревога ", 20)

	got := slug.Make(title)

	if n := utf8.RuneCountInString(got); n > slug.MaxRunes {
		t.Fatalf("slug has %d runes, want at most %d", n, slug.MaxRunes)
	}
	if strings.HasSuffix(got, "-") || strings.Contains(got, "--") {
		t.Fatalf("malformed slug %q", got)
	}
	for _, word := range strings.Split(got, "-") {
		if word != "тревога" {
			t.Fatalf("slug %q contains a partial word %q", got, word)
		}
	}
}
