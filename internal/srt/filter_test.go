package srt

import (
	"strings"
	"testing"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "removes index and timecode lines",
			raw:  "1\n00:00:00,600 --> 00:00:05,569\nHello world.\n2\n00:00:05,819 --> 00:00:11,496\nSecond cue.",
			want: "Hello world. Second cue.",
		},
		{
			name: "rejoins a sentence broken across cues",
			raw:  "1\n00:00:00,000 --> 00:00:02,000\nThis sentence\n2\n00:00:02,000 --> 00:00:04,000\ncontinues here.",
			want: "This sentence continues here.",
		},
		{
			name: "collapses interior whitespace",
			raw:  "some   spaced\t\ttext",
			want: "some spaced text",
		},
		{
			name: "drops blank lines",
			raw:  "first\n\n\nsecond",
			want: "first second",
		},
		{
			name: "malformed timecode stays as content",
			raw:  "00:00:00 --> 00:00:05\nbody",
			want: "00:00:00 --> 00:00:05 body",
		},
		{
			name: "index-like token inside a line survives",
			raw:  "chapter 12 begins",
			want: "chapter 12 begins",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strip(tt.raw)
			if got != tt.want {
				t.Errorf("Strip() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripLeavesNoTimecodes(t *testing.T) {
	raw := "1\n00:00:00,600 --> 00:00:05,569\nWelcome.\n"
	got := Strip(raw)

	if strings.Contains(got, "-->") {
		t.Errorf("Strip() output still contains a timecode: %q", got)
	}
	if strings.Contains(got, "00:00:00,600") {
		t.Errorf("Strip() output still contains a timestamp: %q", got)
	}
}
