package slug

import (
	"regexp"
	"strings"
)

// MaxRunes bounds a slug so long chat titles still give short file names.
const MaxRunes = 48

var separators = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Make turns a free-form title into a lowercase dash-separated file name
// fragment. Letters of any script are kept, so Cyrillic titles survive.
// Slugs longer than MaxRunes are cut back to the last whole word.
func Make(title string) string {
	s := separators.ReplaceAllString(strings.ToLower(title), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "untitled"
	}
	runes := []rune(s)
	if len(runes) <= MaxRunes {
		return s
	}
	cut := string(runes[:MaxRunes])
	if i := strings.LastIndex(cut, "-"); i > 0 {
		cut = cut[:i]
	}
	return strings.Trim(cut, "-")
}
