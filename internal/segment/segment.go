package segment

import (
	"regexp"
	"strings"
)

// Placeholder for literal ellipses while boundaries are located. A private
// use rune cannot occur in well-formed transcript text.
const ellipsisMark = ""

var (
	reWhitespace = regexp.MustCompile(`\s+`)
	reBoundary   = regexp.MustCompile(`[.!?]\s+`)
)

// Split breaks a reflowed text blob into sentences. Terminal punctuation
// stays attached to its sentence and the separating whitespace is dropped.
// Literal "..." sequences are protected so ellipsis dots never terminate a
// sentence. Text with no boundary at all comes back as a single sentence,
// so unpunctuated input cannot loop or explode.
func Split(blob string) []string {
	text := strings.TrimSpace(reWhitespace.ReplaceAllString(blob, " "))
	if text == "" {
		return nil
	}

	text = strings.ReplaceAll(text, "...", ellipsisMark)

	var sentences []string
	start := 0
	for _, loc := range reBoundary.FindAllStringIndex(text, -1) {
		// loc[0] is the punctuation byte; keep it, discard the whitespace.
		sentences = append(sentences, text[start:loc[0]+1])
		start = loc[1]
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}

	out := sentences[:0]
	for _, s := range sentences {
		s = strings.TrimSpace(strings.ReplaceAll(s, ellipsisMark, "..."))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
