// Package section implements the heading-context classification strategy:
// a colon whose prefix is long enough opens a new section, and buffered
// body sentences are batched into fixed-size paragraphs under it.
package section

import (
	"strings"
	"unicode/utf8"

	"github.com/nguyentantai21042004/transcript-forge/internal/classify"
	"github.com/nguyentantai21042004/transcript-forge/internal/segment"
)

// A colon prefix qualifies as a heading when it has at least this many
// runes or at least two words.
const minHeadingRunes = 8

// Strategy buffers sentences under the current heading and flushes a
// section whenever a new heading is detected. Sentences are taken whole;
// the flat per-fragment rules do not apply in this mode.
type Strategy struct {
	// DetectHeadings enables the colon-prefix heading transition. When
	// false the whole input becomes one heading-less section.
	DetectHeadings bool

	// SentencesPerParagraph is the batch size for body paragraphs. Values
	// below 1 are treated as 1.
	SentencesPerParagraph int
}

func (s Strategy) Classify(text string) []classify.Block {
	perParagraph := s.SentencesPerParagraph
	if perParagraph < 1 {
		perParagraph = 1
	}

	acc := accumulator{perParagraph: perParagraph}
	var blocks []classify.Block

	for _, sentence := range segment.Split(text) {
		heading, rest, ok := splitHeading(sentence, s.DetectHeadings)
		if !ok {
			acc.append(sentence)
			continue
		}

		blocks = append(blocks, acc.flush()...)
		acc.open(heading)
		if rest != "" {
			for _, r := range segment.Split(rest) {
				acc.append(r)
			}
		}
	}

	// Exactly one trailing flush; an empty accumulator emits nothing.
	return append(blocks, acc.flush()...)
}

// splitHeading reports whether the sentence opens a new section. The
// heading keeps its colon; rest is the untrimmed-of-meaning remainder
// after it, possibly empty.
func splitHeading(sentence string, enabled bool) (heading, rest string, ok bool) {
	if !enabled {
		return "", "", false
	}

	idx := strings.Index(sentence, ":")
	if idx < 0 {
		return "", "", false
	}

	prefix := strings.TrimSpace(sentence[:idx])
	if utf8.RuneCountInString(prefix) < minHeadingRunes && len(strings.Fields(prefix)) < 2 {
		return "", "", false
	}

	return prefix + ":", strings.TrimSpace(sentence[idx+1:]), true
}

// accumulator owns the buffered body of the current section. flush hands
// the completed section back as blocks and resets the state, so no two
// sections ever share a buffer.
type accumulator struct {
	perParagraph int
	heading      string
	buf          []string
	active       bool
}

func (a *accumulator) open(heading string) {
	a.heading = heading
	a.active = true
}

func (a *accumulator) append(sentence string) {
	a.buf = append(a.buf, sentence)
	a.active = true
}

func (a *accumulator) flush() []classify.Block {
	if !a.active {
		return nil
	}

	var blocks []classify.Block
	if a.heading != "" {
		blocks = append(blocks, classify.Block{Tag: classify.TagHeading, Text: a.heading})
	}
	for start := 0; start < len(a.buf); start += a.perParagraph {
		end := min(start+a.perParagraph, len(a.buf))
		blocks = append(blocks, classify.Block{
			Tag:  classify.TagNormal,
			Text: strings.Join(a.buf[start:end], " "),
		})
	}

	a.heading = ""
	a.buf = nil
	a.active = false
	return blocks
}
