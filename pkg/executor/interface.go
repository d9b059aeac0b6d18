package executor

import "context"

// Executor runs an external command and returns its stdout. Used for the
// optional post-convert hook.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
