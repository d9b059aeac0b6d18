package srt

import (
	"regexp"
	"strings"
)

var (
	reIndexLine  = regexp.MustCompile(`^\s*\d+\s*$`)
	reTimecode   = regexp.MustCompile(`\d{2}:\d{2}:\d{2},\d{3}\s*-->\s*\d{2}:\d{2}:\d{2},\d{3}`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// Strip removes SRT sequence numbers and timecode lines from raw transcript
// text and reflows the surviving content into a single line. Subtitle cues
// break sentences mid-way, so original line breaks are deliberately
// discarded and replaced with single spaces.
//
// A line that merely looks like a timecode but misses the exact
// HH:MM:SS,mmm --> HH:MM:SS,mmm shape is kept as ordinary content.
func Strip(raw string) string {
	var kept []string

	for _, line := range strings.Split(raw, "\n") {
		if reIndexLine.MatchString(line) || reTimecode.MatchString(line) {
			continue
		}
		line = strings.TrimSpace(reWhitespace.ReplaceAllString(line, " "))
		if line == "" {
			continue
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, " ")
}
