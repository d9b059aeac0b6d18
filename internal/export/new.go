package export

import (
	"github.com/nguyentantai21042004/transcript-forge/internal/logger"
)

type implExporter struct {
	font         string
	fontSize     uint64
	headingColor string
	logger       logger.Logger
}

// New creates an Exporter writing .docx files in the given font. Sizes and
// the heading accent color fall back to the defaults when zero-valued.
func New(font string, fontSize int, headingColor string, log logger.Logger) Exporter {
	e := &implExporter{
		font:         font,
		headingColor: headingColor,
		logger:       log,
	}
	if e.font == "" {
		e.font = defaultFont
	}
	if fontSize > 0 {
		e.fontSize = uint64(fontSize)
	} else {
		e.fontSize = defaultFontSize
	}
	if e.headingColor == "" {
		e.headingColor = defaultHeadingColor
	}
	return e
}
