package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"github.com/gomutex/godocx/wml/stypes"

	"github.com/nguyentantai21042004/transcript-forge/internal/classify"
)

const (
	defaultFont         = "Times New Roman"
	defaultFontSize     = 13
	defaultHeadingColor = "6495ED" // cornflower blue
	blackColor          = "000000"
)

// Export writes the blocks to outputPath as a .docx. Styling per tag:
// heading bold + underlined in the accent color, subheading bold black,
// bullet a list item with the portion through a contained colon underlined,
// normal plain black.
func (e *implExporter) Export(ctx context.Context, title string, blocks []classify.Block, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	if title != "" {
		run := doc.AddParagraph("").AddText(title).
			Font(e.font).Size(e.fontSize + 3).Color(blackColor)
		run.Bold(true)
		doc.AddParagraph("")
	}

	for _, b := range blocks {
		switch b.Tag {
		case classify.TagHeading:
			run := doc.AddParagraph("").AddText(b.Text).
				Font(e.font).Size(e.fontSize + 2).Color(e.headingColor)
			run.Bold(true)
			run.Underline(stypes.UnderlineSingle)

		case classify.TagSubheading:
			run := doc.AddParagraph("").AddText(b.Text).
				Font(e.font).Size(e.fontSize + 1).Color(blackColor)
			run.Bold(true)

		case classify.TagBullet:
			e.addBullet(doc.AddParagraph(""), b.Text)

		default:
			doc.AddParagraph("").AddText(b.Text).
				Font(e.font).Size(e.fontSize).Color(blackColor)
		}
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}

	e.logger.Debug(ctx, "Exported %d blocks to %s", len(blocks), outputPath)
	return nil
}

// addBullet styles one list item. When the item carries a colon label, only
// the label (colon included) is underlined.
func (e *implExporter) addBullet(p *docx.Paragraph, text string) {
	p.Style("List Bullet")

	idx := strings.Index(text, ":")
	if idx < 0 {
		p.AddText(text).Font(e.font).Size(e.fontSize).Color(blackColor)
		return
	}

	label := p.AddText(text[:idx+1]).Font(e.font).Size(e.fontSize).Color(blackColor)
	label.Underline(stypes.UnderlineSingle)
	if rest := text[idx+1:]; rest != "" {
		p.AddText(rest).Font(e.font).Size(e.fontSize).Color(blackColor)
	}
}
