package executor

import "context"

// Executor runs short-lived external media tools and captures their output.
// Long-running streaming processes are managed by their callers directly.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
