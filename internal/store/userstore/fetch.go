package userstore

import "context"

// Fetch is the handle of one GetAllUsers call. Callers may wait on it,
// cancel it, or drop it.
type Fetch struct {
	done   chan struct{}
	err    error
	cancel context.CancelFunc
}

// Done is closed once the fetch has settled.
func (f *Fetch) Done() <-chan struct{} { return f.done }

// Err is the fetch outcome. It is nil until Done is closed.
func (f *Fetch) Err() error {
	select {
	case <-f.done:
		return f.err
	default:
		return nil
	}
}

// Wait blocks until the fetch settles or ctx ends. Ending ctx does not
// cancel the fetch itself.
func (f *Fetch) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return f.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Cancel aborts an in-flight fetch. The list is left unchanged.
func (f *Fetch) Cancel() { f.cancel() }
