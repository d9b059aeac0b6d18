package processor

import "context"

// Processor converts transcript files into cleaned text and docx output.
type Processor interface {
	Process(ctx context.Context, path string) error
	ProcessDir(ctx context.Context, dir string) error
}
