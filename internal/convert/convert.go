// Package convert is the pure conversion core: raw transcript text plus
// options in, rendered text plus tagged blocks out. No state survives a
// call, so independent conversions are safe to run concurrently.
package convert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/transcript-forge/internal/classify"
	"github.com/nguyentantai21042004/transcript-forge/internal/render"
	"github.com/nguyentantai21042004/transcript-forge/internal/section"
	"github.com/nguyentantai21042004/transcript-forge/internal/srt"
)

// ErrEmptyInput reports blank or whitespace-only input. It is the only
// user-visible failure: everything else falls back to the normal tag.
var ErrEmptyInput = errors.New("input text is empty")

const (
	// StrategySections groups sentences into paragraphs under colon-derived
	// heading context. The default.
	StrategySections = "sections"
	// StrategyFlat tags each fragment independently via the ordered
	// pattern rules.
	StrategyFlat = "flat"
)

type Options struct {
	Strategy              string
	DetectHeadings        bool
	MarkdownHeadings      bool
	SentencesPerParagraph int
	ParagraphSpacing      int
	NumericColonHeadings  bool
}

// DefaultOptions returns the sections strategy with heading detection on,
// one sentence per paragraph and one blank separator line.
func DefaultOptions() Options {
	return Options{
		Strategy:              StrategySections,
		DetectHeadings:        true,
		SentencesPerParagraph: 1,
		ParagraphSpacing:      1,
	}
}

// Result is built once per conversion and not mutated afterwards.
type Result struct {
	Blocks []classify.Block
	Text   string
}

// Convert cleans, classifies and renders one transcript.
func Convert(text string, opts Options) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	strategy, err := newStrategy(opts)
	if err != nil {
		return nil, err
	}

	blocks := strategy.Classify(srt.Strip(text))
	rendered := render.Text(blocks, render.Options{
		MarkdownHeadings: opts.MarkdownHeadings,
		ParagraphSpacing: opts.ParagraphSpacing,
	})

	return &Result{Blocks: blocks, Text: rendered}, nil
}

func newStrategy(opts Options) (classify.Strategy, error) {
	switch opts.Strategy {
	case StrategySections, "":
		return section.Strategy{
			DetectHeadings:        opts.DetectHeadings,
			SentencesPerParagraph: opts.SentencesPerParagraph,
		}, nil
	case StrategyFlat:
		return classify.Flat{NumericColonHeadings: opts.NumericColonHeadings}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", opts.Strategy)
	}
}
