// Package workers runs the example server's background jobs.
//
// A Worker blocks in Run until its context is canceled. Workers runs a set
// of them side by side and returns once every one has stopped.
package workers

import "context"

// Worker is a background job.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
