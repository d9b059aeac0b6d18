// Package render serializes tagged blocks into plain or markdown text.
package render

import (
	"strings"
	"unicode/utf8"

	"github.com/nguyentantai21042004/transcript-forge/internal/classify"
)

type Options struct {
	// MarkdownHeadings renders headings as ## / ### lines instead of
	// upper-case text over = / - rules.
	MarkdownHeadings bool

	// ParagraphSpacing is the number of blank lines after each body
	// paragraph, clamped to 1..2.
	ParagraphSpacing int
}

// Text renders blocks to a single string, joined with newlines, trailing
// whitespace trimmed, with exactly one trailing newline. In plain mode a
// heading is upper-cased over an = rule of equal rune length; that rule is
// what downstream consumers key level-1 headings on. Subheadings use a -
// rule the same way.
func Text(blocks []classify.Block, opts Options) string {
	spacing := opts.ParagraphSpacing
	if spacing < 1 {
		spacing = 1
	} else if spacing > 2 {
		spacing = 2
	}

	var lines []string
	for i, b := range blocks {
		switch b.Tag {
		case classify.TagHeading:
			if opts.MarkdownHeadings {
				lines = append(lines, "## "+b.Text)
			} else {
				lines = append(lines, strings.ToUpper(b.Text), rule('=', b.Text))
			}
			lines = append(lines, "")

		case classify.TagSubheading:
			if opts.MarkdownHeadings {
				lines = append(lines, "### "+b.Text)
			} else {
				lines = append(lines, b.Text, rule('-', b.Text))
			}
			lines = append(lines, "")

		case classify.TagBullet:
			lines = append(lines, "- "+b.Text)
			// Keep bullet runs tight; separate the run from what follows.
			if i+1 >= len(blocks) || blocks[i+1].Tag != classify.TagBullet {
				lines = append(lines, "")
			}

		default:
			lines = append(lines, b.Text)
			for j := 0; j < spacing; j++ {
				lines = append(lines, "")
			}
		}
	}

	out := strings.TrimRight(strings.Join(lines, "\n"), " \t\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}

func rule(glyph rune, text string) string {
	return strings.Repeat(string(glyph), utf8.RuneCountInString(text))
}
