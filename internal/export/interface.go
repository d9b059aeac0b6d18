package export

import (
	"context"

	"github.com/nguyentantai21042004/transcript-forge/internal/classify"
)

// MIMEWord is the content type of the produced document, for download
// surfaces that serve it.
const MIMEWord = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Exporter writes tagged blocks as a styled rich-text document.
type Exporter interface {
	Export(ctx context.Context, title string, blocks []classify.Block, outputPath string) error
}
