// Package classify assigns structural tags to transcript fragments.
//
// Two strategies implement the same Strategy interface: Flat (this package)
// applies ordered pattern rules to each fragment independently, and
// section.Strategy groups sentences under colon-derived heading context.
// They are alternative pipelines selected by configuration, not layers of
// one pipeline.
package classify

// Tag labels the structural role of a block.
type Tag string

const (
	TagHeading    Tag = "heading"
	TagSubheading Tag = "subheading"
	TagBullet     Tag = "bullet"
	TagNormal     Tag = "normal"
)

// Block is one tagged unit of output text.
type Block struct {
	Tag  Tag
	Text string
}

// Strategy turns a cleaned, reflowed text blob into tagged blocks.
type Strategy interface {
	Classify(text string) []Block
}
