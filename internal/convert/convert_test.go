package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/transcript-forge/internal/classify"
)

const sampleSRT = "1\n" +
	"00:00:00,600 --> 00:00:05,569\n" +
	"Welcome to Module 7: In this module we will cover X, Y, Z.\n"

func TestConvertEndToEnd(t *testing.T) {
	res, err := Convert(sampleSRT, Options{
		Strategy:              StrategySections,
		DetectHeadings:        true,
		SentencesPerParagraph: 1,
		ParagraphSpacing:      1,
	})
	require.NoError(t, err)

	want := "WELCOME TO MODULE 7:\n" +
		strings.Repeat("=", 20) + "\n" +
		"\n" +
		"In this module we will cover X, Y, Z.\n"
	assert.Equal(t, want, res.Text)

	require.Len(t, res.Blocks, 2)
	assert.Equal(t, classify.TagHeading, res.Blocks[0].Tag)
	assert.Equal(t, classify.TagNormal, res.Blocks[1].Tag)
	assert.NotContains(t, res.Text, "-->")
}

func TestConvertEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t\n"} {
		_, err := Convert(text, DefaultOptions())
		assert.ErrorIs(t, err, ErrEmptyInput)
	}
}

func TestConvertUnknownStrategy(t *testing.T) {
	opts := DefaultOptions()
	opts.Strategy = "clever"
	_, err := Convert("Some text.", opts)
	assert.Error(t, err)
}

func TestConvertFlatStrategy(t *testing.T) {
	res, err := Convert("1.2 Overview: details follow.", Options{Strategy: StrategyFlat})
	require.NoError(t, err)

	require.Len(t, res.Blocks, 1)
	assert.Equal(t, classify.TagHeading, res.Blocks[0].Tag)
	assert.Equal(t, "1.2 Overview: details follow.", res.Blocks[0].Text)
}

func TestConvertMarkdownHeadings(t *testing.T) {
	opts := DefaultOptions()
	opts.MarkdownHeadings = true

	res, err := Convert(sampleSRT, opts)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Text, "## Welcome to Module 7:\n"))
}

func TestConvertRenderIdempotent(t *testing.T) {
	// With heading detection off the pipeline is filter → segment →
	// render; feeding its own output back must reproduce it exactly.
	opts := Options{
		Strategy:              StrategySections,
		DetectHeadings:        false,
		SentencesPerParagraph: 1,
		ParagraphSpacing:      1,
	}

	first, err := Convert("Wait... really? Yes.\nAnd the last line carries on.", opts)
	require.NoError(t, err)

	second, err := Convert(first.Text, opts)
	require.NoError(t, err)
	assert.Equal(t, first.Text, second.Text)
}

func TestConvertSentencesEndWithTerminalPunctuation(t *testing.T) {
	res, err := Convert("First thought. Second thought! Third thought? unfinished trailer", Options{
		Strategy:              StrategySections,
		DetectHeadings:        false,
		SentencesPerParagraph: 1,
	})
	require.NoError(t, err)

	require.Len(t, res.Blocks, 4)
	for _, b := range res.Blocks[:3] {
		last := b.Text[len(b.Text)-1]
		assert.Contains(t, ".!?", string(last), "block %q", b.Text)
	}
	assert.Equal(t, "unfinished trailer", res.Blocks[3].Text)
}
