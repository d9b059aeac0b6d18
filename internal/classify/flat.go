package classify

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/nguyentantai21042004/transcript-forge/internal/segment"
)

// Glyphs that introduce a bullet fragment.
const bulletGlyphs = "•·-*"

var (
	reOutline     = regexp.MustCompile(`^\d+(\.\d+)*\s`)
	reModuleColon = regexp.MustCompile(`(?i)Module\s\d+:`)
	reModuleLoose = regexp.MustCompile(`(?i)\bModule\s*\d+`)
	reLabelColon  = regexp.MustCompile(`(?i)^(Example|Case Study|Contents)\s?\d*:`)
)

// Flat classifies every fragment in isolation through an ordered rule list,
// first match wins. Tag assignment never looks at surrounding fragments.
type Flat struct {
	// NumericColonHeadings promotes a colon-terminated fragment containing
	// a digit from subheading to heading.
	NumericColonHeadings bool
}

// rule inspects one fragment and either claims it, returning the blocks it
// produces, or passes it on to the next rule.
type rule func(f Flat, frag string) ([]Block, bool)

// Evaluation order carries the precedence contract: a numbered outline
// label that also ends with a colon is a heading, not a subheading.
var rules = []rule{
	headingRule,
	subheadingRule,
	bulletRule,
	normalRule,
}

func (f Flat) Classify(text string) []Block {
	var blocks []Block
	for _, sentence := range segment.Split(text) {
		for _, frag := range splitBullets(sentence) {
			blocks = append(blocks, f.classifyFragment(frag)...)
		}
	}
	return blocks
}

func (f Flat) classifyFragment(frag string) []Block {
	for _, r := range rules {
		if blocks, ok := r(f, frag); ok {
			return blocks
		}
	}
	return nil
}

// headingRule matches numbered outline labels ("1.2.3 Title") and
// "Module N:" markers. A looser "Module N" without a colon is a heading
// only up to its first period; the remainder re-enters as normal text.
func headingRule(_ Flat, frag string) ([]Block, bool) {
	if reOutline.MatchString(frag) || reModuleColon.MatchString(frag) {
		return []Block{{TagHeading, frag}}, true
	}

	if reModuleLoose.MatchString(frag) {
		idx := strings.Index(frag, ".")
		if idx < 0 {
			return []Block{{TagHeading, frag}}, true
		}
		blocks := []Block{{TagHeading, strings.TrimSpace(frag[:idx+1])}}
		if rest := strings.TrimSpace(frag[idx+1:]); rest != "" {
			blocks = append(blocks, Block{TagNormal, rest})
		}
		return blocks, true
	}

	return nil, false
}

// subheadingRule matches colon-terminated fragments and leading
// Example/Case Study/Contents labels. A colon-terminated bullet is a
// subheading with its glyph stripped, and with NumericColonHeadings a
// digit-bearing colon line is the stronger heading severity.
func subheadingRule(f Flat, frag string) ([]Block, bool) {
	if strings.HasSuffix(frag, ":") {
		text := strings.TrimLeft(frag, bulletGlyphs+" ")
		if f.NumericColonHeadings && strings.ContainsFunc(text, unicode.IsDigit) {
			return []Block{{TagHeading, text}}, true
		}
		return []Block{{TagSubheading, text}}, true
	}

	if reLabelColon.MatchString(frag) {
		return []Block{{TagSubheading, frag}}, true
	}

	return nil, false
}

// bulletRule sees only fragments that did not end with a colon.
func bulletRule(_ Flat, frag string) ([]Block, bool) {
	if !startsWithGlyph(frag) {
		return nil, false
	}
	text := strings.TrimLeft(frag, bulletGlyphs+" ")
	if text == "" {
		return nil, true
	}
	return []Block{{TagBullet, text}}, true
}

func normalRule(_ Flat, frag string) ([]Block, bool) {
	return []Block{{TagNormal, frag}}, true
}

func startsWithGlyph(frag string) bool {
	for _, r := range frag {
		return strings.ContainsRune(bulletGlyphs, r)
	}
	return false
}

// splitBullets breaks a sentence at interior • and · glyphs so that a run
// of inline bullets classifies item by item. Each glyph stays attached to
// the fragment it introduces. Dashes and asterisks are left alone here:
// mid-sentence they are ordinary punctuation.
func splitBullets(sentence string) []string {
	if !strings.ContainsAny(sentence, "•·") {
		return []string{sentence}
	}

	var cuts []int
	for i, r := range sentence {
		if (r == '•' || r == '·') && i > 0 {
			cuts = append(cuts, i)
		}
	}
	if len(cuts) == 0 {
		return []string{sentence}
	}

	var frags []string
	prev := 0
	for _, i := range cuts {
		if piece := strings.TrimSpace(sentence[prev:i]); piece != "" {
			frags = append(frags, piece)
		}
		prev = i
	}
	if piece := strings.TrimSpace(sentence[prev:]); piece != "" {
		frags = append(frags, piece)
	}
	return frags
}
